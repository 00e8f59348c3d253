package services

import (
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
	"go.uber.org/zap"
)

// SubmitOrder runs one order action through the task engine as a single
// atomic unit: locate user, evaluate, persist, broadcast. The order is
// rejected up front when no quota has been assigned yet, or when the current
// task is gated and the user can neither pay nor cover the frozen
// requirement.
func (c *Coordinator) SubmitOrder(userID string, action OrderAction) (*models.User, ProgressResult, error) {
	if action != OrderReceive && action != OrderGive {
		return nil, ProgressResult{}, ErrInvalidOrderType
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.store.UserByID(userID)
	if !ok {
		return nil, ProgressResult{}, ErrUserNotFound
	}
	if u.Quota == 0 {
		return nil, ProgressResult{}, ErrQuotaNotSet
	}

	if cur := firstIncomplete(u.Tasks); cur != nil && cur.RequiredPayment > 0 &&
		!u.HasPaid && u.Quota < cur.RequiredPayment {
		return nil, ProgressResult{}, &QuotaShortfallError{
			Required:  cur.RequiredPayment,
			Available: u.Quota,
		}
	}

	res, err := UpdateProgress(u, action)
	if err != nil {
		return nil, ProgressResult{}, err
	}

	c.persistUsers()

	snapshot := u.Clone()
	if len(res.NewCompletions) > 0 {
		zap.L().Info("task completed",
			zap.String("username", u.Username),
			zap.Int("taskId", res.NewCompletions[0].ID),
			zap.Float64("reward", res.Reward))
	}
	if c.broadcaster != nil {
		c.broadcaster.BroadcastUserUpdate(UserUpdate{
			UserID:         u.ID,
			User:           *snapshot,
			NewCompletions: res.NewCompletions,
		})
	}
	return snapshot, res, nil
}
