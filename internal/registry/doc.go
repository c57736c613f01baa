// Package registry provides the central "glue" between the flow's string
// operation names and the environment that executes them.
//
// The catalog of known operations lives in an embedded HCL manifest. During
// application startup the catalog is validated against the operations the
// stage table actually issues, so a stage table and catalog that drift out
// of sync fail loudly before any design is touched. Embedders can attach Go
// handlers to cataloged operations and obtain a dispatcher backed by them.
package registry
