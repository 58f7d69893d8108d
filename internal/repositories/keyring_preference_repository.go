package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

const keyringServiceName = "studydesk"

// OpenFileKeyring opens the encrypted file keyring under dir.
func OpenFileKeyring(dir, password string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:      keyringServiceName,
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          dir,
		FilePasswordFunc: keyring.FixedStringPrompt(password),
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

type keyringPreferenceRepository struct {
	ring keyring.Keyring
}

func NewKeyringPreferenceRepository(ring keyring.Keyring) PreferenceRepository {
	return &keyringPreferenceRepository{ring: ring}
}

func (r *keyringPreferenceRepository) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required")
	}
	item, err := r.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", fmt.Errorf("%s: %w", key, ErrPreferenceNotFound)
		}
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return string(item.Data), nil
}

func (r *keyringPreferenceRepository) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	err := r.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       keyringServiceName + " " + key,
		Description: "StudyDesk preference " + key,
	})
	if err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}
