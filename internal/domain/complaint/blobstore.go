package complaint

import "context"

// BlobStore is the external binary store evidence files are written to.
// It is an opaque collaborator: the engine hands it bytes and a name and
// gets back a public URL. File content is never persisted in the relational
// store.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
