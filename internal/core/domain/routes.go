package domain

import "net/url"

// Route builders for the navigation surface handed to the presentation
// layer. Navigation itself is the caller's responsibility.

// ProductRoute returns the detail route for a derived product slug.
func ProductRoute(slug string) string {
	return "/product/" + slug
}

// CategoryRoute returns the listing route for a category slug.
func CategoryRoute(slug string) string {
	return "/category/" + slug
}

// SearchRoute returns the full-results route for a raw query string.
func SearchRoute(query string) string {
	return "/search?q=" + url.QueryEscape(query)
}
