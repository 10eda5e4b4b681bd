package report

import (
	"context"

	"orderdesk-be/internal/order"
	"orderdesk-be/internal/utils"
)

// Service derives reporting views from the order store at call time; nothing
// here mutates or caches.
type Service interface {
	Invoice(ctx context.Context, orderID string) (*Invoice, error)
	Report(ctx context.Context) ([]ReportRow, error)
	TransactionTotals(ctx context.Context) (Totals, error)
	OrderCounts(ctx context.Context) (Counts, error)
}

type service struct {
	repo   Repository
	orders order.Repository
}

func NewService(repo Repository, orders order.Repository) Service {
	return &service{repo: repo, orders: orders}
}

func (s *service) Invoice(ctx context.Context, orderID string) (*Invoice, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, order.ErrUnauthorized
	}

	o, err := s.orders.FindByOrderID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	businessName, err := s.repo.BusinessName(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	return &Invoice{
		Business: InvoiceBusiness{Name: businessName},
		Order: InvoiceOrder{
			OrderID: o.OrderID,
			Date:    utils.FormatDate(o.CreatedAt),
			Status:  string(o.Status),
			Customer: InvoiceCustomer{
				Name:    o.CustomerName,
				Phone:   o.CustomerPhone,
				Address: o.CustomerAddress,
			},
			Items:       items,
			TotalAmount: o.TotalAmount(),
		},
	}, nil
}

func (s *service) Report(ctx context.Context) ([]ReportRow, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, order.ErrUnauthorized
	}

	orders, err := s.orders.FetchOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(orders))
	for _, o := range orders {
		items := make([]ReportItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, ReportItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				Price:       it.Price,
				Total:       float64(it.Quantity) * it.Price,
			})
		}
		rows = append(rows, ReportRow{
			OrderID:         o.OrderID,
			Date:            utils.FormatDate(o.CreatedAt),
			CustomerName:    o.CustomerName,
			CustomerPhone:   o.CustomerPhone,
			CustomerAddress: o.CustomerAddress,
			Status:          string(o.Status),
			Items:           items,
			TotalAmount:     o.TotalAmount(),
		})
	}
	return rows, nil
}

func (s *service) TransactionTotals(ctx context.Context) (Totals, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return Totals{}, order.ErrUnauthorized
	}
	return s.repo.TransactionTotals(ctx, userID)
}

func (s *service) OrderCounts(ctx context.Context) (Counts, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return Counts{}, order.ErrUnauthorized
	}
	return s.repo.OrderCounts(ctx, userID)
}
