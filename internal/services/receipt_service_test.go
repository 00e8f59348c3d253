package services

import (
	"testing"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReceipt(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)

	r, err := svc.SubmitReceipt(u.ID, 189, "", "receipt-123.png", "proof.png")
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusPending, r.Status)
	assert.Equal(t, "Payment receipt", r.Description, "blank description falls back to the default")
	assert.Equal(t, "alice", r.Username)
	assert.Nil(t, r.ReviewedAt)

	_, err = svc.SubmitReceipt("missing", 189, "", "f", "f")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReviewReceiptApprovalMarksUserPaid(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)
	r, err := svc.SubmitReceipt(u.ID, 189, "gate payment", "receipt-123.png", "proof.png")
	require.NoError(t, err)

	reviewed, err := svc.ReviewReceipt(r.ID, true, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusApproved, reviewed.Status)
	assert.Equal(t, "admin", reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)

	paid, err := svc.CurrentUser(u.ID)
	require.NoError(t, err)
	assert.True(t, paid.HasPaid)
}

func TestReviewReceiptRejectionKeepsUserUnpaid(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	u, err := svc.Register("alice", "secret1")
	require.NoError(t, err)
	r, err := svc.SubmitReceipt(u.ID, 189, "gate payment", "receipt-123.png", "proof.png")
	require.NoError(t, err)

	reviewed, err := svc.ReviewReceipt(r.ID, false, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ReceiptStatusRejected, reviewed.Status)

	unpaid, err := svc.CurrentUser(u.ID)
	require.NoError(t, err)
	assert.False(t, unpaid.HasPaid)

	// The transition is terminal in either direction.
	_, err = svc.ReviewReceipt(r.ID, true, "admin")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestListUserReceipts(t *testing.T) {
	svc, _, _ := newTestCoordinator(t)

	alice, err := svc.Register("alice", "secret1")
	require.NoError(t, err)
	bob, err := svc.Register("bobby", "secret1")
	require.NoError(t, err)

	_, err = svc.SubmitReceipt(alice.ID, 100, "", "a1.png", "a1.png")
	require.NoError(t, err)
	_, err = svc.SubmitReceipt(bob.ID, 200, "", "b1.png", "b1.png")
	require.NoError(t, err)
	_, err = svc.SubmitReceipt(alice.ID, 300, "", "a2.png", "a2.png")
	require.NoError(t, err)

	mine := svc.ListUserReceipts(alice.ID)
	require.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, alice.ID, r.UserID)
	}
	assert.Len(t, svc.ListReceipts(), 3)
}
