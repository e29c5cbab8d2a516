// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// meta.go computes the HTML head metadata for a request: canonical URL,
// Open Graph and Twitter card blocks, icons and robots directive, all
// derived from the brand resolved for the request's hostname.
package site

import "fmt"

// OGImageRef is a single Open Graph image entry.
type OGImageRef struct {
	URL string
	Alt string
}

// PageMeta holds everything the base templates need to fill the document
// head. Built fresh per request, discarded with the response.
type PageMeta struct {
	Brand       *Brand
	SiteURL     string // Absolute origin, e.g. https://clinicasouluz.com.br
	Canonical   string // Canonical URL for the current page
	Title       string
	Description string
	Keywords    []string

	OGType        string
	OGURL         string
	OGTitle       string
	OGDescription string
	OGImages      []OGImageRef

	TwitterCard        string
	TwitterTitle       string
	TwitterDescription string
	TwitterImage       string

	Icon          string // Also used for shortcut and apple-touch icons
	RobotsContent string // Value of the robots meta tag
}

// MetaForHost builds the default page metadata for the brand serving the
// given Host header value.
func MetaForHost(hostHeader string) *PageMeta {
	hostname := NormalizeHost(hostHeader)
	brand := Get(ResolveByHost(hostname))
	siteURL := URL(hostname)

	return &PageMeta{
		Brand:       brand,
		SiteURL:     siteURL,
		Canonical:   siteURL + "/",
		Title:       brand.Title,
		Description: brand.Description,
		Keywords:    brand.Keywords,

		OGType:        "website",
		OGURL:         siteURL,
		OGTitle:       brand.Title,
		OGDescription: brand.OGDescription,
		OGImages: []OGImageRef{
			{URL: brand.OGImage, Alt: brand.Name},
		},

		TwitterCard:        "summary_large_image",
		TwitterTitle:       brand.Title,
		TwitterDescription: brand.OGDescription,
		TwitterImage:       brand.OGImage,

		Icon:          brand.Icon,
		RobotsContent: "index, follow",
	}
}

// MetaForBrand builds metadata for a specific brand's page served at path
// on the given hostname. Secondary brand pages stay reachable through the
// primary domain, so the brand cannot always be derived from the host.
func MetaForBrand(hostHeader string, key Key, path string) *PageMeta {
	hostname := NormalizeHost(hostHeader)
	brand := Get(key)
	siteURL := URL(hostname)

	// On its own domain the brand page is the root, so the canonical
	// points at the origin, not the internal path the root rewrites to.
	if HostRoutes[hostname] == path {
		path = "/"
	}

	return &PageMeta{
		Brand:       brand,
		SiteURL:     siteURL,
		Canonical:   siteURL + path,
		Title:       brand.Title,
		Description: brand.Description,
		Keywords:    brand.Keywords,

		OGType:        "website",
		OGURL:         siteURL + path,
		OGTitle:       brand.Title,
		OGDescription: brand.OGDescription,
		OGImages: []OGImageRef{
			{URL: brand.OGImage, Alt: brand.Name},
		},

		TwitterCard:        "summary_large_image",
		TwitterTitle:       brand.Title,
		TwitterDescription: brand.OGDescription,
		TwitterImage:       brand.OGImage,

		Icon:          brand.Icon,
		RobotsContent: "index, follow",
	}
}

// WithPage derives child-page metadata from the default: the title runs
// through the brand's title template and the canonical points at the page
// path. The social blocks keep mirroring the new title.
func (m *PageMeta) WithPage(title, path string) *PageMeta {
	page := *m
	page.Title = fmt.Sprintf(m.Brand.TitleTemplate, title)
	page.Canonical = m.SiteURL + path
	page.OGURL = m.SiteURL + path
	page.OGTitle = page.Title
	page.TwitterTitle = page.Title
	return &page
}
