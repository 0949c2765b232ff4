// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the full public view of a directory member, assembled from the
// account, its profile extension and the related collections.
type Profile struct {
	ID             int64         `json:"id"`
	Sex            string        `json:"sex"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Company        string        `json:"company"`
	EmailAddress   string        `json:"emailAddress"`
	Website        string        `json:"website"`
	Intro          string        `json:"intro"`
	Additional     string        `json:"additional"`
	Slogan         string        `json:"slogan"`
	Services       string        `json:"services"`
	City           string        `json:"city"`
	ProvinceCode   *string       `json:"provinceCode"`
	CountryCode    string        `json:"countryCode"`
	PhoneNumber    string        `json:"phoneNumber"`
	Noindex        bool          `json:"noindex"`
	Facebook       *string       `json:"facebook"`
	Twitter        *string       `json:"twitter"`
	Pinterest      *string       `json:"pinterest"`
	Instagram      *string       `json:"instagram"`
	Linkedin       *string       `json:"linkedin"`
	Timestamp      int64         `json:"timestamp"`
	StyleName      string        `json:"styleName"`
	Dark           bool          `json:"dark"`
	BackgroundName *string       `json:"backgroundName"`
	BackgroundURL  *string       `json:"backgroundUrl"`
	Professions    []string      `json:"professions"`
	Certifications []string      `json:"certifications"`
	Images         []Picture     `json:"images"`
	Testimonials   []Testimonial `json:"testimonials"`
	Portrait       *Portrait     `json:"portrait"`
}

// PartialProfile is the summary projection returned by profile searches.
// It omits bio text and the related collections.
type PartialProfile struct {
	ID           int64     `json:"id"`
	Sex          string    `json:"sex"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Company      string    `json:"company"`
	EmailAddress string    `json:"emailAddress"`
	Website      string    `json:"website"`
	Slogan       string    `json:"slogan"`
	City         string    `json:"city"`
	ProvinceCode *string   `json:"provinceCode"`
	CountryCode  string    `json:"countryCode"`
	PhoneNumber  string    `json:"phoneNumber"`
	Timestamp    int64     `json:"timestamp"`
	Portrait     *Portrait `json:"portrait"`
}

// Portrait is the metadata of an uploaded profile portrait.
// Modified is a unix timestamp in seconds.
type Portrait struct {
	AccountID int64  `json:"accountId"`
	Filename  string `json:"filename"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mimeType"`
	Modified  int64  `json:"modified"`
}

// Picture is a gallery image of a profile, ordered by Priority then ID.
type Picture struct {
	ID          int64   `json:"id"`
	Heading     *string `json:"heading"`
	Description *string `json:"description"`
	Priority    int     `json:"priority"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
}

// Testimonial is a client quote shown on a profile.
type Testimonial struct {
	Quote  string `json:"quote"`
	Name   string `json:"name"`
	Rating *int   `json:"rating"`
}
