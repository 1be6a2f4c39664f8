// Package store provides an in-memory subscriber store loaded from a YAML
// provisioning file.
//
// It stands in for the authoritative subscriber-data collaborator: records
// are validated once at load time and served read-only afterwards. The
// renderer never fetches data itself; it only sees records handed out here.
package store
