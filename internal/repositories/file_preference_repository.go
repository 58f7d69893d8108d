package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var validKey = regexp.MustCompile(`^[a-z0-9_]+$`)

type filePreferenceRepository struct {
	dir string
}

// NewFilePreferenceRepository stores each key as <dir>/<key>.json.
func NewFilePreferenceRepository(dir string) PreferenceRepository {
	return &filePreferenceRepository{dir: dir}
}

func (r *filePreferenceRepository) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid preference key %q", key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}

func (r *filePreferenceRepository) Get(_ context.Context, key string) (string, error) {
	path, err := r.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", key, ErrPreferenceNotFound)
		}
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return string(data), nil
}

// Set writes to a temp file then renames it over the target.
func (r *filePreferenceRepository) Set(_ context.Context, key, value string) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating preference dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}
