package forecast

import (
	"errors"

	"go-inventory-billing/internal/repository"

	"gonum.org/v1/gonum/stat"
)

// forecastDays is the length of the predicted period.
const forecastDays = 30

var ErrTooFewPoints = errors.New("at least two sales points are required")

// LinearRegression fits an ordinary least-squares line over
// (day-offset, quantity) pairs and sums the predicted daily quantities for
// the next period. The result is clamped at zero.
type LinearRegression struct{}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

func (l *LinearRegression) Predict(points []repository.SalesPoint) (float64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	origin := points[0].Date
	for _, p := range points {
		if p.Date.Before(origin) {
			origin = p.Date
		}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	lastDay := 0.0
	for i, p := range points {
		day := p.Date.Sub(origin).Hours() / 24
		xs[i] = day
		ys[i] = float64(p.Quantity)
		if day > lastDay {
			lastDay = day
		}
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	total := 0.0
	for day := lastDay + 1; day <= lastDay+forecastDays; day++ {
		total += alpha + beta*day
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}
