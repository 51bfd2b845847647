// Package storage writes uploaded files to the local upload directory.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/proposaldesk/intake-api/internal/core/ports"
)

// PublicPrefix is the URL path segment the upload directory is served under.
const PublicPrefix = "uploads"

const maxNameAttempts = 3

// DiskStore saves files under Dir using generated names of the form
// <field>-<unixMillis>-<random>-<original>.
type DiskStore struct {
	Dir string
	now func() time.Time
}

// NewDiskStore creates dir if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &DiskStore{Dir: dir, now: time.Now}, nil
}

// Save copies src into a newly created file. The original name is reduced to
// its base element, so client-supplied paths cannot escape Dir. Files are
// created exclusively; a name clash is retried with a fresh random part.
func (s *DiskStore) Save(field, originalName string, src io.Reader) (*ports.StoredFile, error) {
	base := filepath.Base(filepath.Clean("/" + originalName))
	if base == "/" || base == "." {
		base = "file"
	}

	var (
		f    *os.File
		name string
		err  error
	)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name = s.fileName(field, base)
		f, err = os.OpenFile(filepath.Join(s.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
		if err == nil || !errors.Is(err, fs.ErrExist) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &ports.StoredFile{
		RelativePath: path.Join(PublicPrefix, name),
		Name:         name,
		Size:         n,
	}, nil
}

// Remove deletes a file written by Save. A file that is already gone is not
// an error.
func (s *DiskStore) Remove(file *ports.StoredFile) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(file.Name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

func (s *DiskStore) fileName(field, base string) string {
	return field + "-" +
		strconv.FormatInt(s.now().UnixMilli(), 10) + "-" +
		strconv.Itoa(rand.Intn(1_000_000_000)) + "-" +
		base
}
