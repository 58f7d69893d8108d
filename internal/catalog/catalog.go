// Package catalog holds the read-only branch/subject/topic tables and the
// application modes.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"studydesk/internal/assets"
	"studydesk/internal/models"
)

var (
	ErrBranchNotFound  = errors.New("branch not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrModeNotFound    = errors.New("mode not found")
)

// Catalog is an ordered, key-indexed view over the embedded catalogue. It is
// immutable after construction and safe for concurrent use.
type Catalog struct {
	branches     []models.Branch
	modes        []models.Mode
	branchIndex  map[string]int
	modeIndex    map[string]int
	subjectIndex map[string]subjectRef
}

type subjectRef struct {
	branch  int
	subject int
}

type rawCatalog struct {
	Modes    []models.Mode   `json:"modes"`
	Branches []models.Branch `json:"branches"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalogue built from the embedded asset.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = New(assets.CatalogData)
	})
	return defaultCat, defaultErr
}

// New parses a catalogue document. Keys are trimmed; entries with an empty
// key are skipped and duplicate keys are rejected.
func New(data []byte) (*Catalog, error) {
	var parsed rawCatalog
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog asset: %w", err)
	}

	c := &Catalog{
		branchIndex:  make(map[string]int),
		modeIndex:    make(map[string]int),
		subjectIndex: make(map[string]subjectRef),
	}

	for _, m := range parsed.Modes {
		m.Key = strings.TrimSpace(m.Key)
		if m.Key == "" {
			continue
		}
		if _, dup := c.modeIndex[m.Key]; dup {
			return nil, fmt.Errorf("duplicate mode %q", m.Key)
		}
		c.modeIndex[m.Key] = len(c.modes)
		c.modes = append(c.modes, m)
	}

	for _, b := range parsed.Branches {
		b.Key = strings.TrimSpace(b.Key)
		if b.Key == "" {
			continue
		}
		if _, dup := c.branchIndex[b.Key]; dup {
			return nil, fmt.Errorf("duplicate branch %q", b.Key)
		}
		bi := len(c.branches)
		subjects := make([]models.Subject, 0, len(b.Subjects))
		for _, s := range b.Subjects {
			s.Key = strings.TrimSpace(s.Key)
			if s.Key == "" {
				continue
			}
			// Favorite ids are "<subject>-<index>", so subject keys must be
			// unique across the whole catalogue.
			if _, dup := c.subjectIndex[s.Key]; dup {
				return nil, fmt.Errorf("duplicate subject %q", s.Key)
			}
			c.subjectIndex[s.Key] = subjectRef{branch: bi, subject: len(subjects)}
			subjects = append(subjects, s)
		}
		b.Subjects = subjects
		c.branchIndex[b.Key] = bi
		c.branches = append(c.branches, b)
	}

	return c, nil
}

// ListBranches returns branch summaries in catalogue order.
func (c *Catalog) ListBranches() []models.Branch {
	out := make([]models.Branch, len(c.branches))
	copy(out, c.branches)
	return out
}

func (c *Catalog) ListModes() []models.Mode {
	out := make([]models.Mode, len(c.modes))
	copy(out, c.modes)
	return out
}

func (c *Catalog) Branch(key string) (models.Branch, bool) {
	i, ok := c.branchIndex[key]
	if !ok {
		return models.Branch{}, false
	}
	return c.branches[i], true
}

func (c *Catalog) Mode(key string) (models.Mode, bool) {
	i, ok := c.modeIndex[key]
	if !ok {
		return models.Mode{}, false
	}
	return c.modes[i], true
}

func (c *Catalog) HasBranch(key string) bool {
	_, ok := c.branchIndex[key]
	return ok
}

func (c *Catalog) HasMode(key string) bool {
	_, ok := c.modeIndex[key]
	return ok
}

// BranchName returns the display name of key, or "" when key is unknown.
func (c *Catalog) BranchName(key string) string {
	b, _ := c.Branch(key)
	return b.Name
}

// Subject looks a subject up within a branch.
func (c *Catalog) Subject(branchKey, subjectKey string) (models.Subject, error) {
	ref, ok := c.subjectIndex[subjectKey]
	if !ok || c.branches[ref.branch].Key != branchKey {
		return models.Subject{}, fmt.Errorf("%w: %s/%s", ErrSubjectNotFound, branchKey, subjectKey)
	}
	return c.branches[ref.branch].Subjects[ref.subject], nil
}

// Topic resolves a topic by its subject key and position.
func (c *Catalog) Topic(subjectKey string, index int) (models.Topic, models.Subject, error) {
	ref, ok := c.subjectIndex[subjectKey]
	if !ok {
		return models.Topic{}, models.Subject{}, fmt.Errorf("%w: %s", ErrSubjectNotFound, subjectKey)
	}
	subject := c.branches[ref.branch].Subjects[ref.subject]
	if index < 0 || index >= len(subject.Topics) {
		return models.Topic{}, subject, fmt.Errorf("%w: %s", ErrTopicNotFound, models.TopicKey(subjectKey, index))
	}
	return subject.Topics[index], subject, nil
}

// FavoriteFromTopic builds the denormalised favorite for a topic.
func (c *Catalog) FavoriteFromTopic(subjectKey string, index int) (models.FavoriteItem, error) {
	topic, subject, err := c.Topic(subjectKey, index)
	if err != nil {
		return models.FavoriteItem{}, err
	}
	return models.FavoriteItem{
		ID:        models.TopicKey(subjectKey, index),
		Title:     topic.Title,
		Content:   topic.Content,
		Formulas:  append([]string(nil), topic.Formulas...),
		KeyPoints: append([]string(nil), topic.KeyPoints...),
		Examples:  append([]string(nil), topic.Examples...),
		Subject:   subject.Name,
	}, nil
}
