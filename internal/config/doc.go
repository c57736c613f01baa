// Package config defines the immutable per-run pipeline configuration and
// the parsing rules for the -run label range. It carries user intent only;
// validation that needs the part table or the stage table happens in the
// flow package.
package config
