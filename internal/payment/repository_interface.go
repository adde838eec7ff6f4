package payment

import "context"

type Repository interface {
	Create(ctx context.Context, bookingID, userID int, amount float64, method, transactionID string) (*Payment, error)
	GetByBookingID(ctx context.Context, bookingID int) (*Payment, error)
	Confirm(ctx context.Context, bookingID int, method string) (*ConfirmResult, error)
}
