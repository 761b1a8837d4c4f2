// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into messages a user can act on.
//
// ActionableError carries the failed operation, the resource involved,
// suggestions and optionally the id of a catalog entry. The catalog holds one
// Markdown page per known problem (missing definition file, invalid argument,
// unsupported shell, ...), rendered with glamour when the CLI reports it.
package issue
