package services

import (
	"math"
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/models"
)

type OrderAction string

const (
	OrderReceive OrderAction = "receive"
	OrderGive    OrderAction = "give"
)

// GenerateTasks materializes the 25-entry catalog for a user: zeroed
// progress, incomplete, and a RequiredPayment frozen from the multiplier
// table and the quota passed in. Callers are responsible for invoking this
// at most once per user; a second call silently discards prior progress.
func GenerateTasks(quota float64) []models.TaskInstance {
	defs := models.Catalog()
	tasks := make([]models.TaskInstance, len(defs))
	for i, d := range defs {
		tasks[i] = models.TaskInstance{
			ID:              d.ID,
			Title:           d.Title,
			Description:     d.Description,
			Target:          d.Target,
			Type:            d.Type,
			RequiredPayment: models.PaymentMultiplier(d.ID) * quota,
		}
	}
	return tasks
}

// ProgressResult reports the outcome of one order action.
type ProgressResult struct {
	Reward         float64
	NewCompletions []models.TaskInstance
}

// UpdateProgress applies one order action to a user: bumps the raw counters,
// recomputes progress for every incomplete task, and completes at most one
// task per call (catalog order). A gated completion checks the quota against
// the frozen RequiredPayment; on shortfall the whole call fails and the user
// is left byte-for-byte unchanged. A successful completion multiplies the
// balance by 1.5 and reports the delta as the reward.
func UpdateProgress(u *models.User, action OrderAction) (ProgressResult, error) {
	if action != OrderReceive && action != OrderGive {
		return ProgressResult{}, ErrInvalidOrderType
	}

	// Work on a clone so a failed gated completion retains nothing.
	work := u.Clone()

	// Every gated task re-demands fresh payment verification.
	if next := firstIncomplete(work.Tasks); next != nil && next.RequiredPayment > 0 {
		work.HasPaid = false
	}

	switch action {
	case OrderReceive:
		work.TotalReceived++
	case OrderGive:
		work.TotalGiven++
	}
	work.DailyOrders++
	work.WeeklyOrders++
	work.MonthlyOrders++

	var res ProgressResult
	completedOne := false
	for i := range work.Tasks {
		t := &work.Tasks[i]
		if t.Completed {
			continue
		}

		t.Progress = math.Min(counterValue(work, t.Type), t.Target)

		if completedOne || t.Progress < t.Target {
			continue
		}

		if t.RequiredPayment > 0 && !work.HasPaid {
			if work.Quota < t.RequiredPayment {
				return ProgressResult{}, &QuotaShortfallError{
					Required:  t.RequiredPayment,
					Available: work.Quota,
				}
			}
			work.HasPaid = true
		}

		now := time.Now()
		t.Completed = true
		t.CompletedAt = &now

		oldBalance := work.Balance
		work.Balance *= 1.5
		res.Reward += work.Balance - oldBalance
		res.NewCompletions = append(res.NewCompletions, *t)
		completedOne = true
	}

	*u = *work
	return res, nil
}

// counterValue maps a task type to the counter that drives its progress.
// Balance tasks read the live balance; everything else reads the order
// counters.
func counterValue(u *models.User, typ models.TaskType) float64 {
	switch typ {
	case models.TaskTypeReceive:
		return float64(u.TotalReceived)
	case models.TaskTypeGive:
		return float64(u.TotalGiven)
	case models.TaskTypeTotal:
		return float64(u.TotalReceived + u.TotalGiven)
	case models.TaskTypeBalance:
		return u.Balance
	case models.TaskTypeDaily:
		return float64(u.DailyOrders)
	case models.TaskTypeWeekly:
		return float64(u.WeeklyOrders)
	case models.TaskTypeMonthly:
		return float64(u.MonthlyOrders)
	}
	return 0
}

func firstIncomplete(tasks []models.TaskInstance) *models.TaskInstance {
	for i := range tasks {
		if !tasks[i].Completed {
			return &tasks[i]
		}
	}
	return nil
}
