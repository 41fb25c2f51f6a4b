// Package domain contains the core Tower of Hanoi model.
//
// The domain is I/O-agnostic: it does not depend on terminals, YAML parsing,
// or the filesystem. Adapters and infrastructure map into/from these types.
package domain
