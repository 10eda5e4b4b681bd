package order

import (
	"context"

	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/metrics"
	"orderdesk-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, p CreateParams) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status string) (*Order, error)
	Delete(ctx context.Context, orderID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateCreate(p CreateParams) error {
	if len(p.Items) == 0 || p.CustomerName == "" || p.CustomerPhone == "" || p.CustomerAddress == "" {
		return ErrMissingFields
	}
	for _, it := range p.Items {
		if it.Description == "" || it.Quantity < 1 || it.Price < 0 {
			return ErrMissingFields
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, p CreateParams) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	if err := validateCreate(p); err != nil {
		return nil, err
	}

	o, err := s.repo.CreateOrderTx(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	return o, nil
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return s.repo.FetchOrders(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status string) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	next := Status(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	// Status is overwritten as requested; no forward-only transition table
	// is enforced here.
	return s.repo.UpdateStatus(ctx, userID, orderID, next)
}

func (s *service) Delete(ctx context.Context, orderID string) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}

	if orderID == "" {
		return ErrMissingOrderID
	}

	if err := s.repo.DeleteAndRenumber(ctx, userID, orderID); err != nil {
		return err
	}

	metrics.OrdersDeleted.Inc()
	logger.FromCtx(ctx).Info("order deleted",
		zap.Uint("user_id", userID),
		zap.String("order_id", orderID),
	)
	return nil
}
