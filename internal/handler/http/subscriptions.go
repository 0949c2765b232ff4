// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pro-directory/internal/utils"
	"github.com/MKhiriev/pro-directory/models"
)

func (h *Handler) subscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoSessionInContext)
		return
	}

	var sub models.PushSubscription
	if err := decodeJSON(r, &sub); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, sub); err != nil {
		writeError(w, r, err)
		return
	}

	subscriptionID, err := h.services.SubscriptionService.RegisterSubscription(ctx, accountID, sub, r.UserAgent())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SubscriptionResponse{Success: true, SubscriptionID: subscriptionID}, http.StatusOK)
}
