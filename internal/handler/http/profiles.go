// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/utils"
	"github.com/MKhiriev/pro-directory/models"
	"github.com/go-chi/chi/v5"
)

// searchProfiles serves GET /profiles. Without query parameters it returns
// the default crawlable listing; with any parameter the search filters are
// validated and noindex profiles are included.
func (h *Handler) searchProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	search := models.DefaultProfileSearch()

	if query := r.URL.Query(); len(query) > 0 {
		search = models.ProfileSearch{
			IncludeNoindexed: true,
			FirstName:        query.Get("firstName"),
			LastName:         query.Get("lastName"),
			CountryCode:      query.Get("countryCode"),
			ProvinceCode:     query.Get("provinceCode"),
			Area:             query.Get("area"),
			Profession:       query.Get("profession"),
		}
		if err := h.validator.Validate(ctx, search); err != nil {
			writeError(w, r, err)
			return
		}
	}

	profiles, err := h.services.ProfileService.SearchProfiles(ctx, search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, ErrInvalidProfileID)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// sitemap serves the XML sitemap of crawlable profiles. X-Length carries the
// number of listed profiles.
func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	urls, total, err := h.services.ProfileService.Sitemap(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	headers := map[string]string{"X-Length": strconv.Itoa(total)}
	if _, err = utils.WriteXML(w, urls, http.StatusOK, headers); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write sitemap")
	}
}
