package user

import (
	"context"
	"errors"

	"github.com/hdcode14/otpbs-exploreease/internal/auth"
	"github.com/hdcode14/otpbs-exploreease/internal/logger"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAdminSecret = errors.New("invalid admin secret key")
	ErrSelfDemotion       = errors.New("cannot change own admin status")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	ListUsers(ctx context.Context) ([]User, error)
	ToggleAdmin(ctx context.Context, actorID, userID int) (*User, error)
}

type service struct {
	repo           Repository
	jwtSecret      string
	adminSecretKey string
}

func NewService(repo Repository, jwtSecret, adminSecretKey string) Service {
	return &service{
		repo:           repo,
		jwtSecret:      jwtSecret,
		adminSecretKey: adminSecretKey,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	isAdmin := false
	if req.AdminSecret != "" {
		if req.AdminSecret != s.adminSecretKey {
			return nil, "", "", ErrInvalidAdminSecret
		}
		isAdmin = true
		logger.Infof("admin user registered: %s", req.Email)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, isAdmin)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Email, user.IsAdmin, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Email, user.IsAdmin, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.IsAdmin, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ToggleAdmin(ctx context.Context, actorID, userID int) (*User, error) {
	if actorID == userID {
		return nil, ErrSelfDemotion
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.repo.SetAdmin(ctx, userID, !user.IsAdmin); err != nil {
		return nil, err
	}

	user.IsAdmin = !user.IsAdmin
	return user, nil
}

// SeedAdmin creates the default admin account on a cold start. Detection
// is an existence query on the admin email, so two concurrent cold starts
// can race; the unique email constraint makes the loser a no-op failure.
func SeedAdmin(ctx context.Context, repo Repository, name, email, password string) error {
	exists, err := repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := repo.Create(ctx, name, email, passwordHash, true); err != nil {
		return err
	}

	logger.Infof("seeded default admin account: %s", email)
	return nil
}
