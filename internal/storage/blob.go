package storage

import (
	"errors"
	"io"
)

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrNotFound   = errors.New("blob not found")
)

// BlobStore keeps generated files such as attendance exports.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	// List returns the keys under prefix, sorted.
	List(prefix string) ([]string, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}
