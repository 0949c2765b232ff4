// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// methodNotAllowed is installed as the router's MethodNotAllowed handler.
// Chi calls it when a path matches a route but the method does not; the
// directory answers 404 so unsupported methods look like unknown routes.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
