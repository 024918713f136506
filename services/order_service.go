package services

import (
	"context"
	"time"

	"github.com/Fromshel/ontaste-api/models"
	"github.com/Fromshel/ontaste-api/repository"
	"go.uber.org/zap"
)

// OrderService defines the business logic for order placement and retrieval.
type OrderService interface {
	PlaceOrder(ctx context.Context, payload map[string]interface{}) (string, *ServiceError)
	ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, *ServiceError)
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// PlaceOrder stamps the server-owned fields onto the caller's document and
// inserts it, returning the generated identifier. No schema is enforced.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, payload map[string]interface{}) (string, *ServiceError) {
	order := models.NewOrder(payload, time.Now().UTC())

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return "", &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	s.logger.Info("Order placed", zap.String("id", id.Hex()))
	return id.Hex(), nil
}

// ListOrdersByEmail returns the orders whose userEmail equals the given
// value, newest first. An email with no orders yields an empty slice.
func (s *orderServiceImpl) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindByUserEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.String("email", email), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
