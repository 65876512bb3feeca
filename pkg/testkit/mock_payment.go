package testkit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/fruitfuel/app/services"
)

// PaymentMock is a testify-backed services.PaymentProvider.
//
//	pay := testkit.NewPaymentMock("https://pay.example/qr/1")
//	svc := services.NewCheckoutService(st, pay)
//	…
//	pay.AssertNumberOfCalls(t, "RequestPayment", 1)
type PaymentMock struct {
	mock.Mock
}

// NewPaymentMock returns a mock that answers every request with ref.
func NewPaymentMock(ref string) *PaymentMock {
	m := &PaymentMock{}
	m.On("RequestPayment", mock.Anything, mock.AnythingOfType("services.PaymentRequest")).Return(ref, nil)
	return m
}

func (m *PaymentMock) RequestPayment(ctx context.Context, req services.PaymentRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// Requests returns every PaymentRequest received, in call order.
func (m *PaymentMock) Requests() []services.PaymentRequest {
	var out []services.PaymentRequest
	for _, c := range m.Calls {
		if c.Method == "RequestPayment" {
			out = append(out, c.Arguments.Get(1).(services.PaymentRequest))
		}
	}
	return out
}

var _ services.PaymentProvider = (*PaymentMock)(nil)
