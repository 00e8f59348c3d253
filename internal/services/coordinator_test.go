package services

import (
	"testing"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/persist"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "admin123"

// recordingBroadcaster captures every update fanned out by the coordinator.
type recordingBroadcaster struct {
	updates []UserUpdate
}

func (b *recordingBroadcaster) BroadcastUserUpdate(update UserUpdate) {
	b.updates = append(b.updates, update)
}

func newTestCoordinator(t *testing.T) (*Coordinator, *ledger.Store, *recordingBroadcaster) {
	t.Helper()

	pm, err := persist.NewManager(t.TempDir())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	store := ledger.NewStore()
	b := &recordingBroadcaster{}
	return NewCoordinator(store, pm, b, "admin", string(hash)), store, b
}
