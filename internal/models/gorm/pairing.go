package gorm

import "time"

// Pairing is one roster row as persisted between imports. Layovers are
// stored as a JSON-encoded string array in a text column.
type Pairing struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement"`
	PairingNumber     string    `gorm:"column:pairing_number;type:varchar(32);not null;index"`
	PreAssigned       string    `gorm:"column:pre_assigned;type:varchar(32)"`
	Duration          int       `gorm:"column:duration;not null"`
	AircraftType      string    `gorm:"column:aircraft_type;type:varchar(16);index"`
	DepartureTime     time.Time `gorm:"column:departure_time;not null;index"`
	ArrivalTime       time.Time `gorm:"column:arrival_time;not null"`
	Details           string    `gorm:"column:details;type:text"`
	BlockHours        string    `gorm:"column:block_hours;type:varchar(8)"`
	BlockHoursDecimal float64   `gorm:"column:block_hours_decimal;not null"`
	Layovers          string    `gorm:"column:layovers;type:text"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for GORM
func (Pairing) TableName() string {
	return "pairings"
}
