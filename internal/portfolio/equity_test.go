package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lending-rate-lab/internal/domain"
)

func snapshotAt(day int, total float64) domain.HoldingsSnapshot {
	return domain.HoldingsSnapshot{
		Datetime: time.Date(2021, 3, 11+day, 0, 0, 0, 0, time.UTC),
		Cash:     total,
		Values:   map[string]float64{},
		Total:    total,
	}
}

func TestBuildEquityCurve(t *testing.T) {
	snapshots := []domain.HoldingsSnapshot{
		snapshotAt(0, 1000),
		snapshotAt(1, 1100),
		snapshotAt(2, 990),
	}

	curve := BuildEquityCurve(snapshots)
	require.Len(t, curve, 3)

	assert.Equal(t, 0.0, curve[0].Returns)
	assert.Equal(t, 1.0, curve[0].EquityCurve)

	assert.InDelta(t, 0.10, curve[1].Returns, 1e-12)
	assert.InDelta(t, 1.10, curve[1].EquityCurve, 1e-12)

	assert.InDelta(t, -0.10, curve[2].Returns, 1e-12)
	assert.InDelta(t, 0.99, curve[2].EquityCurve, 1e-12)
}

func TestBuildEquityCurve_ZeroTotalGuard(t *testing.T) {
	snapshots := []domain.HoldingsSnapshot{
		snapshotAt(0, 0),
		snapshotAt(1, 100),
	}

	curve := BuildEquityCurve(snapshots)
	require.Len(t, curve, 2)
	// No return is computable off a zero base.
	assert.Equal(t, 0.0, curve[1].Returns)
	assert.Equal(t, 1.0, curve[1].EquityCurve)
}

func TestBuildEquityCurve_Empty(t *testing.T) {
	assert.Nil(t, BuildEquityCurve(nil))
}

func TestBuildEquityCurve_DoesNotMutateInput(t *testing.T) {
	snapshots := []domain.HoldingsSnapshot{
		snapshotAt(0, 1000),
		snapshotAt(1, 1100),
	}
	before := snapshots[1].Total

	_ = BuildEquityCurve(snapshots)
	_ = BuildEquityCurve(snapshots)

	assert.Equal(t, before, snapshots[1].Total)
}
