package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
	"github.com/locvowork/sheetpdf/internal/domain"
)

var artifactName = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(pdf|xlsx)$`)

type fileRepository struct {
	uploadDir string
	outputDir string
}

// NewFileRepository creates both directories once and returns a repository
// storing uploads and artifacts under them.
func NewFileRepository(uploadDir, outputDir string) (domain.ArtifactRepository, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &fileRepository{uploadDir: uploadDir, outputDir: outputDir}, nil
}

func (r *fileRepository) SaveUpload(ctx context.Context, src io.Reader) (string, error) {
	path := filepath.Join(r.uploadDir, uuid.NewString()+".xlsx")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return path, nil
}

func (r *fileRepository) RemoveUpload(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

// CreateOutput writes a new artifact named <uuid>.<ext>. The content goes to
// a temp file first and is renamed into place only when write succeeds.
func (r *fileRepository) CreateOutput(ctx context.Context, ext string, write func(w io.Writer) error) (string, error) {
	name := uuid.NewString() + "." + ext
	if !artifactName.MatchString(name) {
		return "", fmt.Errorf("%w: unsupported extension %q", domain.ErrInvalidArtifactName, ext)
	}

	tmp, err := os.CreateTemp(r.outputDir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(r.outputDir, name)); err != nil {
		return "", fmt.Errorf("failed to store artifact: %w", err)
	}
	return name, nil
}

func (r *fileRepository) OutputPath(ctx context.Context, name string) (string, error) {
	if !artifactName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidArtifactName, name)
	}
	path := filepath.Join(r.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, name)
		}
		return "", fmt.Errorf("failed to stat artifact: %w", err)
	}
	return path, nil
}
