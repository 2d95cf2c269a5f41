package forecast

import (
	"testing"
	"time"

	"go-inventory-billing/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestPredictTooFewPoints(t *testing.T) {
	l := NewLinearRegression()

	_, err := l.Predict(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = l.Predict([]repository.SalesPoint{{Date: day(0), Quantity: 5}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestPredictConstantSales(t *testing.T) {
	l := NewLinearRegression()

	// Flat history: the fitted line is y = 4, so the next 30 days sum to 120.
	points := []repository.SalesPoint{
		{Date: day(0), Quantity: 4},
		{Date: day(1), Quantity: 4},
		{Date: day(2), Quantity: 4},
	}
	total, err := l.Predict(points)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, total, 1e-9)
}

func TestPredictLinearGrowth(t *testing.T) {
	l := NewLinearRegression()

	// y = x + 1 exactly: days 3..32 predict 4+5+...+33 = 555.
	points := []repository.SalesPoint{
		{Date: day(0), Quantity: 1},
		{Date: day(1), Quantity: 2},
		{Date: day(2), Quantity: 3},
	}
	total, err := l.Predict(points)
	require.NoError(t, err)
	assert.InDelta(t, 555.0, total, 1e-9)
}

func TestPredictDecliningSalesClampsAtZero(t *testing.T) {
	l := NewLinearRegression()

	points := []repository.SalesPoint{
		{Date: day(0), Quantity: 10},
		{Date: day(1), Quantity: 5},
		{Date: day(2), Quantity: 0},
	}
	total, err := l.Predict(points)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestPredictUnsortedInput(t *testing.T) {
	l := NewLinearRegression()

	// Offsets are computed from the earliest date, not from slice order.
	points := []repository.SalesPoint{
		{Date: day(2), Quantity: 4},
		{Date: day(0), Quantity: 4},
		{Date: day(1), Quantity: 4},
	}
	total, err := l.Predict(points)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, total, 1e-9)
}
