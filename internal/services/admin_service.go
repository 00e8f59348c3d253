package services

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"go.uber.org/zap"
)

// ListUsers returns user snapshots, optionally filtered by a search term
// matching the user number or username.
func (c *Coordinator) ListUsers(search string) []*models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*models.User
	for _, u := range c.store.Users() {
		if matchesSearch(u, search) {
			out = append(out, u.Clone())
		}
	}
	return out
}

// SetQuota assigns a user's quota. The task set materializes exactly once,
// on the first assignment; later changes update the quota but never
// regenerate tasks, so frozen RequiredPayment values stay frozen.
func (c *Coordinator) SetQuota(userID string, quota float64) (*models.User, error) {
	if quota <= 0 {
		return nil, ErrInvalidQuota
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}

	oldQuota := u.Quota
	u.Quota = quota
	if len(u.Tasks) == 0 {
		u.Tasks = GenerateTasks(quota)
		zap.L().Info("task set generated",
			zap.String("username", u.Username), zap.Float64("quota", quota))
	} else {
		zap.L().Info("quota updated, existing tasks kept",
			zap.String("username", u.Username),
			zap.Float64("oldQuota", oldQuota), zap.Float64("quota", quota))
	}
	c.persistUsers()
	return u.Clone(), nil
}

// AddBalance credits an arbitrary amount to a user's balance.
func (c *Coordinator) AddBalance(userID string, amount float64) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	u.Balance += amount
	c.persistUsers()
	return u.Clone(), nil
}

// MarkPaid flags a user as having satisfied the current payment gate.
func (c *Coordinator) MarkPaid(userID string) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	u.HasPaid = true
	c.persistUsers()
	return u.Clone(), nil
}
