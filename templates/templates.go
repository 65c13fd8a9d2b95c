// Package templates bundles the stock modal markup so views render out of
// the box. A renderer configured with a view path loads same named files from
// disk first and only falls back to this bundle.
package templates

import "embed"

// FS holds the bundled template files.
//
//go:embed *.html
var FS embed.FS
