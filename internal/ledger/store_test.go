package ledger

import (
	"testing"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUsers(t *testing.T) {
	s := NewStore()

	s.AddUser(&models.User{ID: "u1", Username: "alice"})
	s.AddUser(&models.User{ID: "u2", Username: "bobby"})
	s.AddUser(&models.User{ID: "u3", Username: "carol"})

	assert.Equal(t, 3, s.UserCount())

	u, ok := s.UserByID("u2")
	require.True(t, ok)
	assert.Equal(t, "bobby", u.Username)

	u, ok = s.UserByUsername("carol")
	require.True(t, ok)
	assert.Equal(t, "u3", u.ID)

	_, ok = s.UserByID("missing")
	assert.False(t, ok)

	// Iteration follows insertion order.
	var ids []string
	for _, u := range s.Users() {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"u1", "u2", "u3"}, ids)
}

func TestStoreReplaceUsers(t *testing.T) {
	s := NewStore()
	s.AddUser(&models.User{ID: "old"})

	s.ReplaceUsers([]*models.User{
		{ID: "n1", Username: "alice"},
		{ID: "n2", Username: "bobby"},
	})

	assert.Equal(t, 2, s.UserCount())
	_, ok := s.UserByID("old")
	assert.False(t, ok)
	_, ok = s.UserByID("n1")
	assert.True(t, ok)
}

func TestStoreWithdrawals(t *testing.T) {
	s := NewStore()
	s.AddWithdrawal(&models.WithdrawalRequest{ID: "w1"})
	s.AddWithdrawal(&models.WithdrawalRequest{ID: "w2"})

	w, ok := s.WithdrawalByID("w1")
	require.True(t, ok)
	assert.Equal(t, "w1", w.ID)

	assert.Len(t, s.Withdrawals(), 2)

	s.ReplaceWithdrawals([]*models.WithdrawalRequest{{ID: "w3"}})
	assert.Len(t, s.Withdrawals(), 1)
	_, ok = s.WithdrawalByID("w1")
	assert.False(t, ok)
}

func TestStoreReceipts(t *testing.T) {
	s := NewStore()
	s.AddReceipt(&models.PaymentReceipt{ID: "r1", UserID: "u1"})
	s.AddReceipt(&models.PaymentReceipt{ID: "r2", UserID: "u2"})
	s.AddReceipt(&models.PaymentReceipt{ID: "r3", UserID: "u1"})

	r, ok := s.ReceiptByID("r2")
	require.True(t, ok)
	assert.Equal(t, "u2", r.UserID)

	mine := s.ReceiptsByUser("u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "r1", mine[0].ID)
	assert.Equal(t, "r3", mine[1].ID)

	assert.Len(t, s.Receipts(), 3)
}
