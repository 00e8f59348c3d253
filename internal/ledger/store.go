package ledger

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
)

// Store holds the authoritative in-memory state: users, withdrawal requests
// and payment receipts. It is pure data access with no business rules and no
// implicit durability; callers must ask the persistence manager to flush.
// The store does no locking of its own; the mutation coordinator serializes
// every access.
type Store struct {
	users       map[string]*models.User
	userOrder   []string
	withdrawals []*models.WithdrawalRequest
	receipts    map[string]*models.PaymentReceipt
	receiptIDs  []string
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		receipts: make(map[string]*models.PaymentReceipt),
	}
}

func (s *Store) UserByID(id string) (*models.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

// UserByUsername scans linearly; fine at this scale.
func (s *Store) UserByUsername(username string) (*models.User, bool) {
	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return s.users[id], true
		}
	}
	return nil, false
}

func (s *Store) AddUser(u *models.User) {
	if _, ok := s.users[u.ID]; !ok {
		s.userOrder = append(s.userOrder, u.ID)
	}
	s.users[u.ID] = u
}

// Users enumerates users in insertion order.
func (s *Store) Users() []*models.User {
	out := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

func (s *Store) UserCount() int {
	return len(s.users)
}

// ReplaceUsers swaps in a freshly loaded user set, preserving file order.
func (s *Store) ReplaceUsers(users []*models.User) {
	s.users = make(map[string]*models.User, len(users))
	s.userOrder = s.userOrder[:0]
	for _, u := range users {
		s.AddUser(u)
	}
}

func (s *Store) AddWithdrawal(w *models.WithdrawalRequest) {
	s.withdrawals = append(s.withdrawals, w)
}

func (s *Store) WithdrawalByID(id string) (*models.WithdrawalRequest, bool) {
	for _, w := range s.withdrawals {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

func (s *Store) Withdrawals() []*models.WithdrawalRequest {
	out := make([]*models.WithdrawalRequest, len(s.withdrawals))
	copy(out, s.withdrawals)
	return out
}

func (s *Store) ReplaceWithdrawals(ws []*models.WithdrawalRequest) {
	s.withdrawals = s.withdrawals[:0]
	s.withdrawals = append(s.withdrawals, ws...)
}

func (s *Store) AddReceipt(r *models.PaymentReceipt) {
	if _, ok := s.receipts[r.ID]; !ok {
		s.receiptIDs = append(s.receiptIDs, r.ID)
	}
	s.receipts[r.ID] = r
}

func (s *Store) ReceiptByID(id string) (*models.PaymentReceipt, bool) {
	r, ok := s.receipts[id]
	return r, ok
}

// Receipts enumerates receipts in insertion order.
func (s *Store) Receipts() []*models.PaymentReceipt {
	out := make([]*models.PaymentReceipt, 0, len(s.receiptIDs))
	for _, id := range s.receiptIDs {
		out = append(out, s.receipts[id])
	}
	return out
}

func (s *Store) ReceiptsByUser(userID string) []*models.PaymentReceipt {
	var out []*models.PaymentReceipt
	for _, id := range s.receiptIDs {
		if r := s.receipts[id]; r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) ReplaceReceipts(rs []*models.PaymentReceipt) {
	s.receipts = make(map[string]*models.PaymentReceipt, len(rs))
	s.receiptIDs = s.receiptIDs[:0]
	for _, r := range rs {
		s.AddReceipt(r)
	}
}
