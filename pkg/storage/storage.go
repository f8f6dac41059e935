package storage

import (
	"context"
	"errors"
	"os"
)

var (
	// ErrNotFound is returned when reading a key that does not exist.
	ErrNotFound = errors.New("Object not found")
)

// Storage is a "bucket" style document store. Keys are slash separated
// paths under a root bucket.
type Storage interface {
	Write(ctx context.Context, key string, body []byte, options *Options) error
	Read(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
	List(ctx context.Context, path string) ([]string, error)
}

// Options alter the behavior of a single write.
type Options struct {
	// TTL is the lifespan of the object in seconds. Zero means no expiry.
	// Only honored by stores that support expiry.
	TTL int64

	Mode    os.FileMode
	DirMode os.FileMode
}

// NewOptions returns Options with sane defaults.
func NewOptions() Options {
	return Options{
		Mode:    0644,
		DirMode: 0755,
	}
}
