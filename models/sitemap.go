// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/xml"

// SitemapNamespace is the XML namespace of the sitemaps.org protocol.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the root element of an XML sitemap.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one <url> entry of a sitemap.
type SitemapURL struct {
	Loc      string  `xml:"loc"`
	LastMod  string  `xml:"lastmod"`
	Priority float64 `xml:"priority"`
}
