// Package apidoc embeds the OpenAPI description of the GlobeTrotter API.
// It is served at /openapi.yaml.
package apidoc

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
