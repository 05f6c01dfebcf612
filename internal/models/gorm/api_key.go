package gorm

import "time"

// APIKey gates access to the /api/v1 routes.
type APIKey struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Status    bool      `gorm:"column:status;not null;default:true"`
	Label     string    `gorm:"column:label;type:varchar(64)"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (APIKey) TableName() string {
	return "api_keys"
}
