package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	domain "video-mcq/internal/domain/repositories"
)

type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) domain.StorageStrategy {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Save(src io.Reader, folder, filename string) (string, error) {
	relPath := filepath.Join(folder, filename)
	fullPath := filepath.Join(l.BasePath, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("storage folder could not be created: %w", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("storage file could not be created: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("storage file could not be written: %w", err)
	}

	return relPath, nil
}

func (l *LocalStorage) Open(relPath string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(l.BasePath, relPath))
}

func (l *LocalStorage) Delete(relPath string) error {
	return os.Remove(filepath.Join(l.BasePath, relPath))
}
