package rest

import (
	"encoding/json"
	"net/http"

	"orderdesk-be/internal/order"
	"orderdesk-be/internal/report"
	"orderdesk-be/internal/user"
	"orderdesk-be/internal/utils"
)

// Handler wires the HTTP surface to the domain services.
type Handler struct {
	UserSvc   user.Service
	OrderSvc  order.Service
	ReportSvc report.Service
	Pinger    interface{ Ping() error }
}

func NewHandler(userSvc user.Service, orderSvc order.Service, reportSvc report.Service, pinger interface{ Ping() error }) *Handler {
	return &Handler{
		UserSvc:   userSvc,
		OrderSvc:  orderSvc,
		ReportSvc: reportSvc,
		Pinger:    pinger,
	}
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var params order.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONMessage(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	o, err := h.OrderSvc.Create(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"message": "Order created successfully",
		"order":   toOrderResponse(o),
	}, http.StatusCreated)
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderSvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{"orders": toOrderResponses(orders)}, http.StatusOK)
}

type updateStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONMessage(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	o, err := h.OrderSvc.UpdateStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"message": "Order status updated",
		"order":   toOrderResponse(o),
	}, http.StatusOK)
}

type deleteOrderRequest struct {
	OrderID string `json:"orderId"`
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	var req deleteOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONMessage(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := h.OrderSvc.Delete(r.Context(), req.OrderID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSONMessage(w, "Order deleted successfully.", http.StatusOK)
}

func (h *Handler) OrderInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.ReportSvc.Invoice(r.Context(), r.PathValue("orderId"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, inv, http.StatusOK)
}

func (h *Handler) OrdersReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ReportSvc.Report(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{"orders": rows}, http.StatusOK)
}

func (h *Handler) TransactionTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ReportSvc.TransactionTotals(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, totals, http.StatusOK)
}

func (h *Handler) OrderCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.ReportSvc.OrderCounts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, counts, http.StatusOK)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Pinger != nil {
		if err := h.Pinger.Ping(); err != nil {
			utils.WriteJSON(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
