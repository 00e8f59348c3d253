package services

import (
	"sync"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/persist"
	"go.uber.org/zap"
)

// UserUpdate is the payload handed to the broadcast collaborator after a
// successful order mutation. It fans out to every connected listener, not
// just the owner.
type UserUpdate struct {
	UserID         string                `json:"userId"`
	User           models.User           `json:"user"`
	NewCompletions []models.TaskInstance `json:"newCompletions"`
}

// Broadcaster is implemented by the websocket hub.
type Broadcaster interface {
	BroadcastUserUpdate(update UserUpdate)
}

// Coordinator is the mutation boundary exposed to the HTTP layer. Every call
// arrives already authenticated; the coordinator locates the target records,
// runs the task engine, asks the persistence manager to flush, and notifies
// the broadcaster, all under one global mutex, which restores the original
// design's single-threaded atomicity.
type Coordinator struct {
	mu          sync.Mutex
	store       *ledger.Store
	persist     *persist.Manager
	broadcaster Broadcaster

	adminUsername     string
	adminPasswordHash string
}

func NewCoordinator(store *ledger.Store, pm *persist.Manager, b Broadcaster, adminUsername, adminPasswordHash string) *Coordinator {
	return &Coordinator{
		store:             store,
		persist:           pm,
		broadcaster:       b,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// Flush saves all three collections. Called on shutdown.
func (c *Coordinator) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persist.SaveAll(c.store)
}

// Persistence is best-effort durability: a failed save is logged and the
// already-applied in-memory mutation stands. Callers still see success.

func (c *Coordinator) persistUsers() {
	if err := c.persist.SaveUsers(c.store); err != nil {
		zap.L().Error("users snapshot save failed", zap.Error(err))
	}
}

func (c *Coordinator) persistWithdrawals() {
	if err := c.persist.SaveWithdrawals(c.store); err != nil {
		zap.L().Error("withdrawals snapshot save failed", zap.Error(err))
	}
}

func (c *Coordinator) persistReceipts() {
	if err := c.persist.SaveReceipts(c.store); err != nil {
		zap.L().Error("receipts snapshot save failed", zap.Error(err))
	}
}
