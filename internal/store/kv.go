// Package store persists the workspace's collections as whole JSON
// values under well-known keys, mirroring how the sidebar state lives
// in browser local storage: read-modify-write, no incremental patching.
package store

import "context"

// Well-known storage keys. Each collection is serialized wholesale.
const (
	KeyFolders   = "notes.folders"
	KeyDocuments = "notes.documents"
	KeyTreeState = "notes.tree-state"
)

// KV is the key-value persistence collaborator. Get reports found=false
// for keys that were never written.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
