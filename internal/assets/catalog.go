package assets

import _ "embed"

// CatalogData holds the raw JSON for branches, subjects, topics and modes.
//
//go:embed catalog.json
var CatalogData []byte
