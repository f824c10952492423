// Package manifest loads fast-call signature declarations from TOML, so an
// embedder can keep its fast-function surface in configuration and bind Go
// callbacks against it at startup:
//
//	[[function]]
//	namespace = "host:math"
//	name      = "sum-bytes"
//	args      = ["int32", "typedarray<uint8>", "options"]
//	return    = "float64"
package manifest
