package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/angicungduoc/foodreview/pkg/idx"
	"github.com/angicungduoc/foodreview/pkg/slogx"
)

var (
	ErrFileTooLarge    = errors.New("file_too_large")
	ErrUnsupportedFile = errors.New("unsupported_file_type")
)

// DefaultMaxUploadSize caps a single file at 10 MiB.
const DefaultMaxUploadSize = 10 << 20

// UploadService stores user media on local disk under Dir and serves it
// back under BasePath. Filenames are ULID-prefixed so uploads never collide
// and sort by time on disk.
type UploadService struct {
	Dir      string
	BasePath string
	MaxSize  int64
}

var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".mp4": {}, ".webm": {},
}

// Save writes one uploaded file to disk and returns its public path.
func (s *UploadService) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	maxSize := s.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if header.Size > maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedFile
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	name := string(idx.New()) + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// LimitReader guards against a lying Content-Length.
	if _, err := io.Copy(dst, io.LimitReader(file, maxSize+1)); err != nil {
		return "", err
	}
	if info, err := dst.Stat(); err == nil && info.Size() > maxSize {
		_ = os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	slogx.FromContext(ctx).Info("file uploaded",
		slog.String("name", name), slog.Int64("size", header.Size))

	return filepath.ToSlash(filepath.Join(s.BasePath, name)), nil
}

// SaveAll stores a batch of files, returning the public paths in order. On
// any failure the already-written files are removed so a batch is all or
// nothing.
func (s *UploadService) SaveAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			s.removeAll(paths)
			return nil, err
		}

		path, err := s.Save(ctx, file, header)
		_ = file.Close()
		if err != nil {
			s.removeAll(paths)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *UploadService) removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(filepath.Join(s.Dir, filepath.Base(p)))
	}
}
