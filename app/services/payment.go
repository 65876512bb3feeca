package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/config"
)

// PaymentRequest is everything the payment collaborator is told about an order.
type PaymentRequest struct {
	OrderID   string            `json:"orderId"`
	UserID    string            `json:"userId"`
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
	Timestamp time.Time         `json:"timestamp"`
}

// PaymentProvider takes an order off the storefront's hands and returns a
// reference the shopper can use to pay, such as a QR code URL.
type PaymentProvider interface {
	RequestPayment(ctx context.Context, req PaymentRequest) (string, error)
}

// QRCodeProvider is the placeholder provider: it does not take payment, it
// only builds a QR image URL that encodes the order.
type QRCodeProvider struct {
	BaseURL string
	Size    string
}

// NewQRCodeProvider reads the QR endpoint and size from config.
func NewQRCodeProvider() *QRCodeProvider {
	return &QRCodeProvider{
		BaseURL: config.PaymentQRBaseURL(),
		Size:    config.PaymentQRSize(),
	}
}

type qrPayload struct {
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
	UserID    string            `json:"userId"`
	Timestamp string            `json:"timestamp"`
}

func (p *QRCodeProvider) RequestPayment(ctx context.Context, req PaymentRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := json.Marshal(qrPayload{
		Items:     req.Items,
		Total:     req.Total,
		UserID:    req.UserID,
		Timestamp: req.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", fmt.Errorf("qr: encode order: %w", err)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("qr: base url: %w", err)
	}
	q := u.Query()
	q.Set("size", p.Size)
	q.Set("data", string(data))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
