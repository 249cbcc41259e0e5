package photostore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinica-api/internal/domain/photo"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

var errInvalidPath = httperr.Validation("invalid_photo_path", "Caminho de imagem inválido.")

// LocalStore grava as fotos em {base}/{pasta}/{arquivo}.
type LocalStore struct {
	base string
}

func NewLocalStore(base string) (*LocalStore, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("create photo base dir: %w", err)
	}
	return &LocalStore{base: base}, nil
}

func (s *LocalStore) folderPath(folder string) (string, error) {
	if !validSegment(folder) {
		return "", errInvalidPath
	}
	return filepath.Join(s.base, folder), nil
}

func (s *LocalStore) filePath(folder, name string) (string, error) {
	dir, err := s.folderPath(folder)
	if err != nil {
		return "", err
	}
	if !validSegment(name) {
		return "", errInvalidPath
	}
	return filepath.Join(dir, name), nil
}

// Pastas e arquivos são sempre um único segmento dentro da base.
func validSegment(seg string) bool {
	if seg == "" || seg == "." || seg == ".." {
		return false
	}
	return !strings.ContainsAny(seg, `/\`)
}

func (s *LocalStore) FolderExists(_ context.Context, folder string) (bool, error) {
	dir, err := s.folderPath(folder)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (s *LocalStore) EnsureFolder(_ context.Context, folder string) error {
	dir, err := s.folderPath(folder)
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *LocalStore) List(_ context.Context, folder string) ([]string, error) {
	dir, err := s.folderPath(folder)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		// arquivos temporários de escrita começam com "."
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *LocalStore) FileExists(_ context.Context, folder, name string) (bool, error) {
	path, err := s.filePath(folder, name)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *LocalStore) Read(_ context.Context, folder, name string) ([]byte, error) {
	path, err := s.filePath(folder, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, photo.ErrNotFound
	}
	return data, err
}

func (s *LocalStore) Write(_ context.Context, folder, name string, data []byte) error {
	path, err := s.filePath(folder, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(path), ".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *LocalStore) Remove(_ context.Context, folder, name string) error {
	path, err := s.filePath(folder, name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return photo.ErrNotFound
	}
	return err
}

func (s *LocalStore) MoveFile(_ context.Context, srcFolder, dstFolder, name string) error {
	src, err := s.filePath(srcFolder, name)
	if err != nil {
		return err
	}
	dst, err := s.filePath(dstFolder, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.Rename(src, dst)
}

func (s *LocalStore) RenameFolder(_ context.Context, src, dst string) error {
	srcDir, err := s.folderPath(src)
	if err != nil {
		return err
	}
	dstDir, err := s.folderPath(dst)
	if err != nil {
		return err
	}
	return os.Rename(srcDir, dstDir)
}

func (s *LocalStore) RemoveFolderIfEmpty(_ context.Context, folder string) (bool, error) {
	dir, err := s.folderPath(folder)
	if err != nil {
		return false, err
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(entries) > 0 {
		return false, nil
	}
	return true, os.Remove(dir)
}

var _ photo.Store = (*LocalStore)(nil)
