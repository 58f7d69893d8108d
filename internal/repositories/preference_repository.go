package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studydesk/internal/models"
)

// ErrPreferenceNotFound is returned by every backend when a key has never
// been written.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository is a string-keyed, string-valued store. Each value is
// read and replaced as a whole.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is required")
	}
	var pref models.Preference
	if err := r.db.WithContext(ctx).Where("key = ?", key).Take(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%s: %w", key, ErrPreferenceNotFound)
		}
		return "", fmt.Errorf("getting preference %s: %w", key, err)
	}
	return string(pref.Value), nil
}

func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	if value == "" {
		return fmt.Errorf("value is required")
	}
	pref := models.Preference{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now().UTC(),
	}
	// Upsert on the unique key
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error; err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}
