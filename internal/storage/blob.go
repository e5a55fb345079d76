// Package storage holds generated artifact bytes behind a small blob
// interface so the filesystem store can later be swapped for an object
// store without touching callers.
package storage

import "io"

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}
