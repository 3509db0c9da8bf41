package storage

import "context"

// Store is the minimal blob interface the flat-file backends share.
// Read reports ok=false when the named blob does not exist, which is a
// legitimate empty state and not an error.
type Store interface {
	Read(ctx context.Context, name string) (data []byte, ok bool, err error)
	Write(ctx context.Context, name string, data []byte) error
	Remove(ctx context.Context, name string) error
}
