package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpireStaleReservations(t *testing.T) {
	f := newFixture(t)

	stale := f.seedPending(t, "BKS2000000000001", 56000, nil)
	stale.ExpiredAt = time.Now().Add(-time.Hour)
	alsoStale := f.seedPending(t, "BKS2000000000002", 30000, nil)
	alsoStale.ExpiredAt = time.Now().Add(-time.Minute)
	f.seedPending(t, "BKS2000000000003", 41000, nil) // still payable

	count, err := f.uc.ExpireStaleReservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NotContains(t, f.store.pending, "BKS2000000000001")
	assert.NotContains(t, f.store.pending, "BKS2000000000002")
	assert.Contains(t, f.store.pending, "BKS2000000000003")

	// Each swept reservation is announced downstream.
	assert.ElementsMatch(t, []string{"BKS2000000000001", "BKS2000000000002"}, f.collaborators.expired)

	// The next sweep finds nothing to do.
	count, err = f.uc.ExpireStaleReservations(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExpireStaleReservations_PublishFailureStillSweeps(t *testing.T) {
	f := newFixture(t)
	stale := f.seedPending(t, "BKS2000000000004", 56000, nil)
	stale.ExpiredAt = time.Now().Add(-time.Hour)
	f.collaborators.failPublish = true

	count, err := f.uc.ExpireStaleReservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NotContains(t, f.store.pending, "BKS2000000000004")
}

func TestListUserOrders_ClampsPagination(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("b1", 10)
	pending := f.seedPending(t, "BKS2000000000005", 56000, nil)
	_, err := f.uc.Finalize(context.Background(), pending, successResult("BKS2000000000005", 56000))
	require.NoError(t, err)

	orders, total, err := f.uc.ListUserOrders(context.Background(), "user-1", -3, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, "BKS2000000000005", orders[0].OrderNo)
}

func TestGetOrderByOrderNo(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("b1", 10)
	pending := f.seedPending(t, "BKS2000000000006", 56000, nil)
	_, err := f.uc.Finalize(context.Background(), pending, successResult("BKS2000000000006", 56000))
	require.NoError(t, err)

	found, err := f.uc.GetOrderByOrderNo(context.Background(), "BKS2000000000006")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)

	_, err = f.uc.GetOrderByOrderNo(context.Background(), "BKS0000000000000")
	assert.Error(t, err)
}
