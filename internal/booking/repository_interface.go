package booking

import "context"

type Repository interface {
	Create(ctx context.Context, userID, packageID, guests int, travelDate string, totalPrice float64) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetDetail(ctx context.Context, id int) (*Detail, error)
	ListByUser(ctx context.Context, userID int) ([]Detail, error)
	ListRecent(ctx context.Context, limit int) ([]Detail, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Stats backs the admin dashboard and business report. Revenue sums
// confirmed bookings only.
type Stats struct {
	TotalUsers        int     `db:"total_users" json:"total_users"`
	TotalPackages     int     `db:"total_packages" json:"total_packages"`
	TotalBookings     int     `db:"total_bookings" json:"total_bookings"`
	ConfirmedBookings int     `db:"confirmed_bookings" json:"confirmed_bookings"`
	PendingRefunds    int     `db:"pending_refunds" json:"pending_refunds"`
	TotalRevenue      float64 `db:"total_revenue" json:"total_revenue"`
}
