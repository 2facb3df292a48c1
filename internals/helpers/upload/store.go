package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var ErrInvalidPath = errors.New("path upload tidak valid")

// Store menyimpan file berdasarkan path relatif terhadap root upload.
type Store interface {
	Save(ctx context.Context, relPath string, r io.Reader, contentType string) error
	Delete(ctx context.Context, relPath string) error
	DeleteDir(ctx context.Context, relDir string) error
	Walk(ctx context.Context, fn func(relPath string, modTime time.Time) error) error
}

// CleanRel menormalkan path relatif (pemisah "/") dan menolak path absolut
// atau yang keluar dari root.
func CleanRel(p string) (string, error) {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" || strings.HasPrefix(p, "/") || filepath.IsAbs(p) {
		return "", ErrInvalidPath
	}
	c := path.Clean(p)
	if c == "." || c == ".." || strings.HasPrefix(c, "../") {
		return "", ErrInvalidPath
	}
	return c, nil
}

/* =======================================================================
   LocalStore: disk
======================================================================= */

type LocalStore struct {
	Root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if strings.TrimSpace(root) == "" {
		root = "uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("buat folder upload: %w", err)
	}
	return &LocalStore{Root: root}, nil
}

func (s *LocalStore) abs(rel string) (string, error) {
	c, err := CleanRel(rel)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(c)), nil
}

func (s *LocalStore) Save(ctx context.Context, relPath string, r io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst, err := s.abs(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

func (s *LocalStore) Delete(_ context.Context, relPath string) error {
	p, err := s.abs(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) DeleteDir(_ context.Context, relDir string) error {
	p, err := s.abs(relDir)
	if err != nil {
		return err
	}
	return os.RemoveAll(p)
}

func (s *LocalStore) Walk(ctx context.Context, fn func(relPath string, modTime time.Time) error) error {
	return filepath.WalkDir(s.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Root, p)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), info.ModTime())
	})
}

// PublicBase adalah prefix URL publik file upload (static /uploads atau domain OSS).
var PublicBase = "/uploads"

// PublicURL mengubah path relatif menjadi URL yang bisa dibuka client.
func PublicURL(rel string) string {
	if rel == "" {
		return ""
	}
	return strings.TrimRight(PublicBase, "/") + "/" + strings.TrimLeft(rel, "/")
}
