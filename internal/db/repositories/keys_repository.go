package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	"pilotbid/bidboard/internal/models/entities"
	gormModels "pilotbid/bidboard/internal/models/gorm"
)

type KeysRepo struct {
	db *gormlib.DB
}

func NewApiKeysRepo(db *gormlib.DB) *KeysRepo {
	return &KeysRepo{db}
}

// GetStatus looks up an API key; nil result means the key is unknown.
func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.ApiKey, error) {
	var row gormModels.APIKey
	err := r.db.WithContext(ctx).Where("id = ?", key).First(&row).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entities.ApiKey{ID: row.ID, Status: row.Status}, nil
}

// Create mints a new key row.
func (r *KeysRepo) Create(ctx context.Context, id, label string) error {
	return r.db.WithContext(ctx).Create(&gormModels.APIKey{
		ID:     id,
		Status: true,
		Label:  label,
	}).Error
}
