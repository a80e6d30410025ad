package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChargeRequest is what a payment processor needs to attempt a charge.
type ChargeRequest struct {
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	CardNumber string  `json:"card_number"`
	Expiry     string  `json:"expiry"`
	CVV        string  `json:"cvv"`
	HolderName string  `json:"holder_name"`
}

// ChargeResult is the processor's verdict.
type ChargeResult struct {
	Approved bool `json:"approved"`
}

// Gateway is the external payment-processing capability. Implementations
// are swappable between the mock and a real processor without changing the
// payment pipeline.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// MockGateway simulates a card processor: it declines any card number
// starting with the configured prefix and waits Delay before answering to
// model processor latency. The wait parks only the calling goroutine, so
// concurrent requests are never serialized behind it.
type MockGateway struct {
	DeclinePrefix string
	Delay         time.Duration
}

func NewMockGateway(declinePrefix string, delay time.Duration) *MockGateway {
	return &MockGateway{DeclinePrefix: declinePrefix, Delay: delay}
}

func (g *MockGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ChargeResult{}, ctx.Err()
		}
	}
	if g.DeclinePrefix != "" && strings.HasPrefix(req.CardNumber, g.DeclinePrefix) {
		return ChargeResult{Approved: false}, nil
	}
	return ChargeResult{Approved: true}, nil
}

// HTTPGateway posts charges to a real processor endpoint.
type HTTPGateway struct {
	client *resty.Client
	url    string
}

func NewHTTPGateway(url, apiKey string) *HTTPGateway {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey)
	return &HTTPGateway{client: client, url: url}
}

func (g *HTTPGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	var result ChargeResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(g.url)
	if err != nil {
		return ChargeResult{}, fmt.Errorf("gateway charge request: %w", err)
	}
	if resp.IsError() {
		return ChargeResult{}, fmt.Errorf("gateway charge failed with status %d", resp.StatusCode())
	}
	return result, nil
}
