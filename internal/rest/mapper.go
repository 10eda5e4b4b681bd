package rest

import (
	"orderdesk-be/internal/order"
	"orderdesk-be/internal/user"
	"orderdesk-be/internal/utils"
)

type ItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	OrderID         string         `json:"orderId"`
	Items           []ItemResponse `json:"items"`
	Status          string         `json:"status"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	Date            string         `json:"date"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return OrderResponse{
		OrderID:         o.OrderID,
		Items:           items,
		Status:          string(o.Status),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Date:            utils.FormatDate(o.CreatedAt),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

type UserResponse struct {
	ID           uint    `json:"id"`
	FullName     string  `json:"fullName"`
	BusinessName string  `json:"businessName"`
	BusinessType *string `json:"businessType"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phoneNumber"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
}

func toUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		BusinessName: u.BusinessName,
		BusinessType: u.BusinessType,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		State:        u.State,
		Country:      u.Country,
	}
}
