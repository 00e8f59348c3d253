package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQuota(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)

	_, err = svc.SetQuota(u.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuota)
	_, err = svc.SetQuota(u.ID, -5)
	assert.ErrorIs(t, err, ErrInvalidQuota)
	_, err = svc.SetQuota("missing", 100)
	assert.ErrorIs(t, err, ErrUserNotFound)

	updated, err := svc.SetQuota(u.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, float64(100), updated.Quota)
	require.Len(t, updated.Tasks, 25)
	assert.InDelta(t, 189, updated.Tasks[2].RequiredPayment, 1e-9)
}

func TestSetQuotaKeepsExistingTasks(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)
	u := registerWithQuota(t, svc, 100)

	_, _, err := svc.SubmitOrder(u.ID, OrderReceive)
	require.NoError(t, err)

	// Raising the quota later neither regenerates tasks nor thaws the
	// frozen payment requirements.
	updated, err := svc.SetQuota(u.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, float64(200), updated.Quota)
	assert.True(t, updated.Tasks[0].Completed)
	assert.InDelta(t, 189, updated.Tasks[2].RequiredPayment, 1e-9)
}

func TestAddBalance(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)

	updated, err := svc.AddBalance(u.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, float64(250), updated.Balance)

	updated, err = svc.AddBalance(u.ID, -50)
	require.NoError(t, err)
	assert.Equal(t, float64(200), updated.Balance)

	_, err = svc.AddBalance("missing", 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMarkPaid(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)
	require.False(t, u.HasPaid)

	updated, err := svc.MarkPaid(u.ID)
	require.NoError(t, err)
	assert.True(t, updated.HasPaid)

	_, err = svc.MarkPaid("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsersSearch(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	alice, err := svc.Register("Alice", "secret1")
	require.NoError(t, err)
	_, err = svc.Register("bobby", "secret1")
	require.NoError(t, err)

	assert.Len(t, svc.ListUsers(""), 2)

	byName := svc.ListUsers("ali")
	require.Len(t, byName, 1)
	assert.Equal(t, "Alice", byName[0].Username)

	byNumber := svc.ListUsers(alice.UserNumber)
	require.Len(t, byNumber, 1)
	assert.Equal(t, alice.ID, byNumber[0].ID)

	assert.Empty(t, svc.ListUsers("zzz"))
}
