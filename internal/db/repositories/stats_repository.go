package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pilotbid/bidboard/internal/models/dtos"
)

// aircraftStatsQuery aggregates the roster per aircraft type.
const aircraftStatsQuery = `
	SELECT
		aircraft_type,
		COUNT(*) AS pairing_count,
		ROUND(SUM(block_hours_decimal)::numeric, 2) AS total_block_hours,
		ROUND(AVG(block_hours_decimal)::numeric, 2) AS avg_block_hours,
		ROUND(AVG(duration)::numeric, 2) AS avg_duration
	FROM pairings
	GROUP BY aircraft_type
	ORDER BY total_block_hours DESC
`

// StatsRepository serves the hand-written aggregate queries behind the
// statistics view.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// AircraftStats returns per-aircraft totals over the stored roster.
func (r *StatsRepository) AircraftStats(ctx context.Context) ([]dtos.AircraftStatsRow, error) {
	var rows []dtos.AircraftStatsRow
	if err := r.db.SelectContext(ctx, &rows, aircraftStatsQuery); err != nil {
		return nil, err
	}
	return rows, nil
}
