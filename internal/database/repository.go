package database

import (
	"sync"

	"github.com/webext-tools/png-saver/internal/entity"
	"github.com/webext-tools/png-saver/internal/pkg/storage"
)

// DownloadRepository is the download subsystem the pipeline hands off to.
// Save returns the filename actually written, after clash resolution.
type DownloadRepository interface {
	Save(req *entity.DownloadRequest) (string, error)
	Exists(filename string) bool
	Delete(filename string) error
}

type fileDownloadRepository struct {
	mu      sync.Mutex
	storage storage.FileStorage
}
