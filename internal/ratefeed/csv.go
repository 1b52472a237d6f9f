package ratefeed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"lending-rate-lab/internal/domain"
)

// Accepted timestamp layouts for the date column, tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// loadCSV reads one token's raw observations from a flat CSV file with a
// header row and two columns: date, liquidityIndex. Rows keep source order.
func loadCSV(path, token string) ([]domain.RateObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ratefeed: open %s: %w", token, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ratefeed: read %s: %w", token, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip the header row.
	var obs []domain.RateObservation
	for i, rec := range records[1:] {
		ts, err := parseTimestamp(rec[0])
		if err != nil {
			return nil, fmt.Errorf("ratefeed: %s row %d: %w", token, i+2, err)
		}
		index, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ratefeed: %s row %d: parse liquidityIndex: %w", token, i+2, err)
		}
		obs = append(obs, domain.RateObservation{
			Token:          token,
			Timestamp:      ts,
			LiquidityIndex: index,
		})
	}

	return obs, nil
}

// parseTimestamp parses a date column value, normalizing to a naive UTC
// clock so all series compare on the same timeline.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q", value)
}
