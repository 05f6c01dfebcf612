package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	"pilotbid/bidboard/internal/bid"
	gormModels "pilotbid/bidboard/internal/models/gorm"
)

// PreferenceRepository handles the preferences table.
type PreferenceRepository struct {
	db *gormlib.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gormlib.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// List returns all stored preferences in insertion order.
func (r *PreferenceRepository) List(ctx context.Context) ([]bid.Preference, error) {
	var rows []gormModels.Preference
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	prefs := make([]bid.Preference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, bid.Preference{
			ID:    row.ID,
			Type:  bid.PreferenceType(row.Type),
			Value: row.Value,
			Label: row.Label,
		})
	}
	return prefs, nil
}

// Create stores one preference.
func (r *PreferenceRepository) Create(ctx context.Context, pref bid.Preference) error {
	row := gormModels.Preference{
		ID:    pref.ID,
		Type:  string(pref.Type),
		Value: pref.Value,
		Label: pref.Label,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// Delete removes one preference by id. Returns gorm.ErrRecordNotFound
// semantics via the affected-row count.
func (r *PreferenceRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.Preference{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
