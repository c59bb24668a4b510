// Package static embeds the API documentation assets served under /static
// and /docs.
package static

import "embed"

// OpenAPIUIFile is the docs page inside FS.
const OpenAPIUIFile = "openapi.html"

//go:embed openapi.html openapi.json
var FS embed.FS
