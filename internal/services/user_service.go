package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const dayStampLayout = "Mon Jan 02 2006"

// Register creates a new user with an empty task set (tasks materialize the
// first time an admin assigns a quota).
func (c *Coordinator) Register(username, password string) (*models.User, error) {
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.store.UserByUsername(username); exists {
		return nil, ErrUserAlreadyExists
	}

	now := time.Now()
	day := now.Format(dayStampLayout)
	u := &models.User{
		ID:               uuid.New().String(),
		UserNumber:       c.generateUserNumber(),
		Username:         username,
		Password:         string(hashed),
		Tasks:            []models.TaskInstance{},
		LastDailyReset:   day,
		LastWeeklyReset:  day,
		LastMonthlyReset: day,
		CreatedAt:        now,
		LastLogin:        now,
	}
	c.store.AddUser(u)
	c.persistUsers()

	zap.L().Info("user registered",
		zap.String("username", username), zap.String("userNumber", u.UserNumber))
	return u.Clone(), nil
}

// Login verifies credentials and stamps LastLogin.
func (c *Coordinator) Login(username, password string) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByUsername(username)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u.LastLogin = time.Now()
	c.persistUsers()
	return u.Clone(), nil
}

// AdminLogin checks the static admin account seeded from configuration.
func (c *Coordinator) AdminLogin(username, password string) error {
	if username != c.adminUsername {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.adminPasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// CurrentUser returns a snapshot of one user.
func (c *Coordinator) CurrentUser(userID string) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.Clone(), nil
}

// BackfillUserNumbers repairs historical records that predate user numbers,
// then re-saves. Called once at startup, right after the load.
func (c *Coordinator) BackfillUserNumbers() {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := 0
	for _, u := range c.store.Users() {
		if u.UserNumber == "" {
			u.UserNumber = c.generateUserNumber()
			updated++
		}
	}
	if updated > 0 {
		c.persistUsers()
		zap.L().Info("backfilled user numbers", zap.Int("count", updated))
	}
}

// generateUserNumber produces a unique 11-digit number starting with 1.
// Caller must hold the mutex.
func (c *Coordinator) generateUserNumber() string {
	for {
		n := fmt.Sprintf("1%010d", rand.Int63n(10_000_000_000))
		taken := false
		for _, u := range c.store.Users() {
			if u.UserNumber == n {
				taken = true
				break
			}
		}
		if !taken {
			return n
		}
	}
}

// matchesSearch reports whether a user matches an admin search term, by
// user number fragment or case-insensitive username fragment.
func matchesSearch(u *models.User, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(u.UserNumber, search) {
		return true
	}
	return strings.Contains(strings.ToLower(u.Username), strings.ToLower(search))
}
