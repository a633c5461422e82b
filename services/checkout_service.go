package services

import (
	"context"

	"borica/entity"
)

// Checkout prepares signed gateway forms and checks gateway callbacks.
type Checkout interface {
	PrepareForm(ctx context.Context, details entity.OrderDetails) (*entity.SignedForm, error)
	VerifyCallback(ctx context.Context, fields map[string]string) (*entity.CallbackResult, error)
}
