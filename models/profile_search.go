// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfileSearch holds the filters of a profile search. Empty string filters
// are ignored; every non-empty filter narrows the result (AND).
type ProfileSearch struct {
	// IncludeNoindexed lifts the noindex restriction. The zero value lists
	// crawlable profiles only.
	IncludeNoindexed bool `json:"-"`

	// FirstName and LastName are case-insensitive prefixes.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	CountryCode  string `json:"countryCode" validate:"required,len=2"`
	ProvinceCode string `json:"provinceCode"`

	// Area is matched case-insensitively anywhere in the city or in one of
	// the named service areas.
	Area string `json:"area"`

	// Profession must match a profession name exactly.
	Profession string `json:"profession" validate:"required"`
}

// DefaultProfileSearch is the unfiltered crawlable listing used by the sitemap and by
// GET /profiles without query parameters.
func DefaultProfileSearch() ProfileSearch {
	return ProfileSearch{}
}
