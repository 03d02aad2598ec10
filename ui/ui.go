// Package ui holds the HTML templates of the catalog pages.
package ui

import "embed"

//go:embed "html"
var Files embed.FS
