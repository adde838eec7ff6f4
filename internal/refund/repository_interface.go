package refund

import "context"

type Repository interface {
	// CreateWithCancel inserts the refund request and cancels the
	// booking in one transaction.
	CreateWithCancel(ctx context.Context, bookingID, userID int, reason string, refundAmount float64) (*Request, error)
	CancelOnly(ctx context.Context, bookingID int) error
	GetByID(ctx context.Context, id int) (*Request, error)
	ListAll(ctx context.Context) ([]AdminView, error)
	// Approve marks the request approved and the booking refunded in
	// one transaction.
	Approve(ctx context.Context, id int) (*Request, error)
	Reject(ctx context.Context, id int) (*Request, error)
}
