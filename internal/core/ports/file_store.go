package ports

import "io"

// StoredFile describes a file written by a FileStore.
type StoredFile struct {
	// RelativePath is the path clients use to fetch the file, e.g. "uploads/<name>".
	RelativePath string
	Name         string
	Size         int64
}

// FileStore persists uploaded files under generated names.
type FileStore interface {
	Save(field, originalName string, src io.Reader) (*StoredFile, error)
	// Remove deletes a file returned by Save.
	Remove(file *StoredFile) error
}
