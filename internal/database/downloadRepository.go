package database

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/webext-tools/png-saver/internal/entity"
	"github.com/webext-tools/png-saver/internal/pkg/dataurl"
	"github.com/webext-tools/png-saver/internal/pkg/storage"
)

func NewDownloadRepository(storage storage.FileStorage) DownloadRepository {
	return &fileDownloadRepository{storage: storage}
}

func (r *fileDownloadRepository) Save(req *entity.DownloadRequest) (string, error) {
	data, err := dataurl.Decode(req.Data)
	if err != nil {
		return "", err
	}

	// Overlapping invocations may hand off the same filename; the name
	// has to stay reserved until its file exists, so resolution and the
	// write happen under one lock.
	r.mu.Lock()
	defer r.mu.Unlock()

	name := r.resolveName(req.Filename)
	if err := r.storage.Save(name, bytes.NewReader(data)); err != nil {
		return "", err
	}

	return name, nil
}

func (r *fileDownloadRepository) Exists(filename string) bool {
	return r.storage.Exists(filename)
}

func (r *fileDownloadRepository) Delete(filename string) error {
	return r.storage.Delete(filename)
}

// resolveName auto-suffixes clashing names the way browser download
// managers do: image.png, image (1).png, image (2).png, ...
func (r *fileDownloadRepository) resolveName(name string) string {
	if !r.storage.Exists(name) {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if !r.storage.Exists(candidate) {
			return candidate
		}
	}
}
