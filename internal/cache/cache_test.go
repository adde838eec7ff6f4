package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestGetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, time.Minute)

	mock.ExpectGet(CatalogKey).RedisNil()

	var out []fixture
	err := c.Get(context.Background(), CatalogKey, &out)
	require.ErrorIs(t, err, ErrMiss)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetThenGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, time.Minute)

	value := []fixture{{Name: "Darjeeling Delight", Price: 14999}}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	mock.ExpectSet(CatalogKey, data, time.Minute).SetVal("OK")
	require.NoError(t, c.Set(context.Background(), CatalogKey, value))

	mock.ExpectGet(CatalogKey).SetVal(string(data))

	var out []fixture
	require.NoError(t, c.Get(context.Background(), CatalogKey, &out))
	require.Equal(t, value, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateSwallowsErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, time.Minute)

	mock.ExpectDel(CatalogKey).SetErr(context.DeadlineExceeded)

	require.NotPanics(t, func() {
		c.Invalidate(context.Background(), CatalogKey)
	})
}
