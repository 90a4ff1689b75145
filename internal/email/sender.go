package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para envío de correos del producto.
type Sender interface {
	SendBrandReport(ctx context.Context, toEmail, subject, body string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendBrandReport(_ context.Context, _, _, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
