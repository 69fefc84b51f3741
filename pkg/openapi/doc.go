// Package openapi exposes the contracts for deriving form schemas from
// OpenAPI request bodies. The kin-openapi backed implementation lives under
// internal/openapi; construct it through the root formstate package.
package openapi
