package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hdcode14/otpbs-exploreease/internal/auth"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash string, isAdmin bool) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) AdminExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) ListAll(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockUserRepo) SetAdmin(ctx context.Context, id int, isAdmin bool) error {
	return m.Called(ctx, id, isAdmin).Error(0)
}

const testJWTSecret = "test-secret"
const testAdminSecret = "admin123"

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, "New User", "new@example.com", mock.Anything, false).
			Return(&User{ID: 1, Name: "New User", Email: "new@example.com"}, nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		user, access, refresh, err := svc.Register(ctx, RegisterRequest{
			Name: "New User", Email: "new@example.com", Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		_, _, _, err := svc.Register(ctx, RegisterRequest{
			Name: "User", Email: "taken@example.com", Password: "password123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("valid admin secret creates admin", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "boss@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, "Boss", "boss@example.com", mock.Anything, true).
			Return(&User{ID: 2, Name: "Boss", Email: "boss@example.com", IsAdmin: true}, nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		user, _, _, err := svc.Register(ctx, RegisterRequest{
			Name: "Boss", Email: "boss@example.com", Password: "password123", AdminSecret: testAdminSecret,
		})

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("wrong admin secret is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "mallory@example.com").Return(false, nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		_, _, _, err := svc.Register(ctx, RegisterRequest{
			Name: "Mallory", Email: "mallory@example.com", Password: "password123", AdminSecret: "guess",
		})

		assert.ErrorIs(t, err, ErrInvalidAdminSecret)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	t.Run("successful login", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").
			Return(&User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		user, access, _, err := svc.Login(ctx, LoginRequest{Email: "user@example.com", Password: "correct-password"})

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").
			Return(&User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		_, _, _, err := svc.Login(ctx, LoginRequest{Email: "user@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, errors.New("sql: no rows"))

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		_, _, _, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ToggleAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes a regular user", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByID", mock.Anything, 2).Return(&User{ID: 2, IsAdmin: false}, nil)
		repo.On("SetAdmin", mock.Anything, 2, true).Return(nil)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		user, err := svc.ToggleAdmin(ctx, 1, 2)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("self-demotion blocked", func(t *testing.T) {
		repo := new(MockUserRepo)

		svc := NewService(repo, testJWTSecret, testAdminSecret)
		_, err := svc.ToggleAdmin(ctx, 1, 1)

		assert.ErrorIs(t, err, ErrSelfDemotion)
		repo.AssertNotCalled(t, "SetAdmin", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds when admin absent", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "admin@exploreease.com").Return(false, nil)
		repo.On("Create", mock.Anything, "Admin User", "admin@exploreease.com", mock.Anything, true).
			Return(&User{ID: 1, IsAdmin: true}, nil)

		err := SeedAdmin(ctx, repo, "Admin User", "admin@exploreease.com", "admin123")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("no-op when admin present", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "admin@exploreease.com").Return(true, nil)

		err := SeedAdmin(ctx, repo, "Admin User", "admin@exploreease.com", "admin123")
		require.NoError(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
