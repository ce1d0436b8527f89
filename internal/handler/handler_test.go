package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojadev/checkout-service/internal/domain/checkout"
	"github.com/lojadev/checkout-service/internal/domain/order"
	"github.com/lojadev/checkout-service/internal/domain/payment"
)

type stubGateway struct {
	result payment.ChargeResult
	err    error
	amount decimal.Decimal
}

func (s *stubGateway) Charge(_ context.Context, amount decimal.Decimal, _ string) (payment.ChargeResult, error) {
	s.amount = amount
	return s.result, s.err
}

type stubOrderRepo struct {
	err error
}

func (s *stubOrderRepo) Save(_ context.Context, candidate order.Candidate) (*order.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &order.Order{
		ID:        "order-1",
		Cart:      candidate.Cart,
		Total:     candidate.Total,
		Status:    order.StatusProcessed,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

type stubNotifier struct{}

func (s *stubNotifier) Send(_ context.Context, _, _, _ string) error { return nil }

func newServer(gw *stubGateway, repo *stubOrderRepo) *httptest.Server {
	h := NewHandler(checkout.NewService(gw, repo, &stubNotifier{}))
	mux := http.NewServeMux()
	h.Register(mux)
	return httptest.NewServer(mux)
}

const checkoutBody = `{
	"customer": {"id": "u1", "name": "Maria", "email": "maria@exemplo.com", "tier": "PREMIUM"},
	"items": [{"description": "Fone de ouvido", "price": 200.00}],
	"payment_token": "tok-1"
}`

func TestCheckout_Success(t *testing.T) {
	gw := &stubGateway{result: payment.ChargeResult{Authorized: true}}
	srv := newServer(gw, &stubOrderRepo{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/checkout", "application/json", strings.NewReader(checkoutBody))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		OrderID string  `json:"order_id"`
		Total   float64 `json:"total"`
		Status  string  `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "order-1", body.OrderID)
	assert.Equal(t, "PROCESSED", body.Status)
	assert.InDelta(t, 180.0, body.Total, 0.001)
	assert.Equal(t, "180", gw.amount.String(), "premium cart must be charged the discounted total")
}

func TestCheckout_Declined(t *testing.T) {
	gw := &stubGateway{result: payment.ChargeResult{Authorized: false, Reason: "card declined"}}
	srv := newServer(gw, &stubOrderRepo{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/checkout", "application/json", strings.NewReader(checkoutBody))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
}

func TestCheckout_CollaboratorFault(t *testing.T) {
	gw := &stubGateway{result: payment.ChargeResult{Authorized: true}}
	srv := newServer(gw, &stubOrderRepo{err: errors.New("db down")})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/checkout", "application/json", strings.NewReader(checkoutBody))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCheckout_MalformedBody(t *testing.T) {
	srv := newServer(&stubGateway{}, &stubOrderRepo{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/checkout", "application/json", strings.NewReader(`{"items":`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckout_EmptyCartAllowed(t *testing.T) {
	gw := &stubGateway{result: payment.ChargeResult{Authorized: true}}
	srv := newServer(gw, &stubOrderRepo{})
	defer srv.Close()

	body := `{"customer": {"id": "u1", "email": "a@b.com", "tier": "STANDARD"}, "items": [], "payment_token": "tok-1"}`
	resp, err := http.Post(srv.URL+"/api/checkout", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, gw.amount.IsZero())
}
