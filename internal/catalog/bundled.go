package catalog

import _ "embed"

//go:embed personajes.json
var bundledCatalog []byte
