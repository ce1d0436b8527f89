// Package gateway provides the HTTP client for the external payment provider.
package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/lojadev/checkout-service/internal/domain/payment"
)

var _ payment.Gateway = (*HTTPGateway)(nil)

// HTTPGateway implements payment.Gateway against the provider's REST API.
// A declined authorization is reported through the result, never as an error;
// errors mean the provider could not be reached or answered garbage.
type HTTPGateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// Option configures an HTTPGateway.
type Option func(*HTTPGateway)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *HTTPGateway) { g.client = c }
}

// NewHTTPGateway creates a gateway client for the provider at baseURL,
// authenticating with the given API key. The default client enforces a
// 30 second request timeout; the checkout flow itself imposes no deadline.
func NewHTTPGateway(baseURL, apiKey string, opts ...Option) *HTTPGateway {
	g := &HTTPGateway{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Charge requests authorization for amount against the payment token.
func (g *HTTPGateway) Charge(ctx context.Context, amount decimal.Decimal, token string) (payment.ChargeResult, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("amount")
	e.Str(amount.String())
	e.FieldStart("token")
	e.Str(token)
	e.ObjEnd()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/charges", bytes.NewReader(e.Bytes()))
	if err != nil {
		return payment.ChargeResult{}, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return payment.ChargeResult{}, errors.Wrap(err, "call payment provider")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payment.ChargeResult{}, errors.Wrap(err, "read response")
	}

	// The provider answers 200 for authorized and 402 for declined charges,
	// both with the same response shape. Anything else is a fault.
	switch resp.StatusCode {
	case http.StatusOK, http.StatusPaymentRequired:
	default:
		return payment.ChargeResult{}, errors.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	result, err := decodeChargeResponse(body)
	if err != nil {
		return payment.ChargeResult{}, errors.Wrap(err, "decode response")
	}

	return result, nil
}

func decodeChargeResponse(data []byte) (payment.ChargeResult, error) {
	var result payment.ChargeResult

	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "authorized":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "authorized")
			}
			result.Authorized = v
		case "reason":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "reason")
			}
			result.Reason = v
		default:
			return d.Skip()
		}
		return nil
	})
	if err != nil {
		return payment.ChargeResult{}, err
	}

	return result, nil
}
