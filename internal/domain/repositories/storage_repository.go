package repositories

import "io"

// StorageStrategy abstracts where merged videos and thumbnails live.
// Paths are storage-relative ("videos/<name>", "thumbnails/<name>").
type StorageStrategy interface {
	Save(src io.Reader, folder, filename string) (string, error)
	Open(relPath string) (io.ReadCloser, error)
	Delete(relPath string) error
}
