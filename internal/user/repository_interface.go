package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string, isAdmin bool) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
	ListAll(ctx context.Context) ([]User, error)
	SetAdmin(ctx context.Context, id int, isAdmin bool) error
}
