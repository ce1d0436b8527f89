// Package handler exposes the checkout flow over HTTP.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lojadev/checkout-service/internal/domain/cart"
	"github.com/lojadev/checkout-service/internal/domain/checkout"
	"github.com/lojadev/checkout-service/internal/domain/customer"
)

// Handler serves the checkout endpoint, delegating all business logic to the
// checkout service.
type Handler struct {
	checkout *checkout.Service
}

// NewHandler constructs a Handler around the checkout service.
func NewHandler(svc *checkout.Service) *Handler {
	return &Handler{checkout: svc}
}

// Register mounts the handler's routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/checkout", h.Checkout)
}

type checkoutRequest struct {
	Customer struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Tier  string `json:"tier"`
	} `json:"customer"`
	Items []struct {
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
	} `json:"items"`
	PaymentToken string `json:"payment_token"`
}

type checkoutResponse struct {
	OrderID   string          `json:"order_id"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Checkout handles POST /api/checkout. A declined payment maps to 402; a
// collaborator fault maps to 500 with the detail kept in the logs.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lg := zctx.From(ctx)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
		return
	}

	c := &cart.Cart{
		User: customer.User{
			ID:    req.Customer.ID,
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Tier:  customer.Tier(req.Customer.Tier),
		},
	}
	for _, item := range req.Items {
		c.Items = append(c.Items, cart.Item{
			Description: item.Description,
			Price:       item.Price,
		})
	}

	o, err := h.checkout.ProcessOrder(ctx, c, req.PaymentToken)
	if err != nil {
		lg.Error("Checkout failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "checkout failed",
		})
		return
	}
	if o == nil {
		writeJSON(w, http.StatusPaymentRequired, errorResponse{
			Code:    http.StatusPaymentRequired,
			Message: "payment declined",
		})
		return
	}

	lg.Info("Order processed",
		zap.String("order_id", o.ID),
		zap.String("total", o.Total.String()),
	)
	writeJSON(w, http.StatusCreated, checkoutResponse{
		OrderID:   o.ID,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
