package service

import (
	"log"

	"go-inventory-billing/internal/repository"

	"github.com/google/uuid"
)

// Predictor is the forecasting collaborator: it receives the full scoped
// sales history and returns a single non-negative quantity for the next
// period.
type Predictor interface {
	Predict(points []repository.SalesPoint) (float64, error)
}

type StockForecast struct {
	ProductID               uuid.UUID `json:"product_id"`
	PredictedStockNextMonth float64   `json:"predicted_stock_next_month"`
}

type ForecastService interface {
	PredictStock(companyID, productID uuid.UUID) (*StockForecast, error)
}

type forecastService struct {
	orderRepo repository.OrderRepository
	predictor Predictor
}

func NewForecastService(orderRepo repository.OrderRepository, predictor Predictor) ForecastService {
	return &forecastService{
		orderRepo: orderRepo,
		predictor: predictor,
	}
}

// PredictStock fetches the product's scoped sales history and hands it to
// the collaborator unmodified. A collaborator failure degrades to a zero
// forecast; that simplification is part of the documented contract.
func (s *forecastService) PredictStock(companyID, productID uuid.UUID) (*StockForecast, error) {
	history, err := s.orderRepo.SalesHistory(companyID, productID)
	if err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return nil, ErrNoHistory
	}

	predicted, err := s.predictor.Predict(history)
	if err != nil {
		log.Printf("forecast collaborator failed for product %s: %v", productID, err)
		predicted = 0.0
	}

	return &StockForecast{
		ProductID:               productID,
		PredictedStockNextMonth: predicted,
	}, nil
}
