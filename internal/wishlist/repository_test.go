package wishlist

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestRepositoryAdd(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	t.Run("new item", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wishlist_items`)).
			WithArgs(1, 7).
			WillReturnResult(sqlmock.NewResult(1, 1))

		added, err := repo.Add(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wishlist_items`)).
			WithArgs(1, 7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		added, err := repo.Add(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.False(t, added)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryRemove(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	t.Run("removed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM wishlist_items WHERE user_id = $1 AND package_id = $2`)).
			WithArgs(1, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Remove(context.Background(), 1, 7))
	})

	t.Run("not in wishlist", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM wishlist_items WHERE user_id = $1 AND package_id = $2`)).
			WithArgs(1, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Remove(context.Background(), 1, 99), ErrItemNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryList(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "destination", "category", "duration", "price", "rating",
		"latitude", "longitude", "description", "image", "region",
		"itinerary", "inclusions", "available_slots", "is_active", "created_at",
	}).AddRow(7, "Goa Beach Escape", "Goa", "Beach", "4D / 3N", 12999.0, 4.7,
		15.2993, 74.1240, "Relax.", "goa.jpg", "Other India",
		"Day 1|Day 2", "Resort|Breakfast", 50, true, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN packages p ON p.id = w.package_id`)).
		WithArgs(1).
		WillReturnRows(rows)

	packages, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Goa Beach Escape", packages[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryContains(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND package_id = $2)`)).
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Contains(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
