package gorm

import "time"

// Preference is one stored bidding rule.
type Preference struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Type      string    `gorm:"column:type;type:varchar(32);not null;index"`
	Value     string    `gorm:"column:value;type:varchar(64);not null"`
	Label     string    `gorm:"column:label;type:varchar(128)"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (Preference) TableName() string {
	return "preferences"
}
