package mocks

import (
	"context"
	"fmt"
	"sync"

	"studydesk/internal/repositories"
)

// PreferenceRepositoryMock falls back to an in-memory map for any function
// field left nil.
type PreferenceRepositoryMock struct {
	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string) error

	mu     sync.Mutex
	Values map[string]string
	Writes []string
}

func NewPreferenceRepositoryMock(seed map[string]string) *PreferenceRepositoryMock {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &PreferenceRepositoryMock{Values: values}
}

func (m *PreferenceRepositoryMock) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Values[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, repositories.ErrPreferenceNotFound)
	}
	return v, nil
}

func (m *PreferenceRepositoryMock) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.Writes = append(m.Writes, key)
	m.mu.Unlock()
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Values == nil {
		m.Values = make(map[string]string)
	}
	m.Values[key] = value
	return nil
}
