// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the directory.
//
// It exposes route wiring, request handlers, and middleware. Panic recovery,
// request tracing, access logging, compression and the session-cookie gate
// are handled here before requests are delegated to the service layer.
// Failures are answered as {"error": "..."} with the status taken from
// errorStatusMap.
package http
