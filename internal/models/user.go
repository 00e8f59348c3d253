package models

import "time"

// User is the authoritative ledger record for one account. It is owned by
// the ledger store and mutated only through the task engine or admin intents.
type User struct {
	ID               string         `json:"id"`
	UserNumber       string         `json:"userNumber"`
	Username         string         `json:"username"`
	Password         string         `json:"password"` // bcrypt hash
	Balance          float64        `json:"balance"`
	TotalReceived    int            `json:"totalReceived"`
	TotalGiven       int            `json:"totalGiven"`
	DailyOrders      int            `json:"dailyOrders"`
	WeeklyOrders     int            `json:"weeklyOrders"`
	MonthlyOrders    int            `json:"monthlyOrders"`
	LastDailyReset   string         `json:"lastDailyReset"`
	LastWeeklyReset  string         `json:"lastWeeklyReset"`
	LastMonthlyReset string         `json:"lastMonthlyReset"`
	Tasks            []TaskInstance `json:"tasks"`
	Quota            float64        `json:"quota"` // 0 = not assigned yet
	HasPaid          bool           `json:"hasPaid"`
	CreatedAt        time.Time      `json:"createdAt"`
	LastLogin        time.Time      `json:"lastLogin"`
}

// Clone returns a deep copy, including the task set. The task engine works
// on a clone so a failed completion leaves the original untouched.
func (u *User) Clone() *User {
	c := *u
	if u.Tasks != nil {
		c.Tasks = make([]TaskInstance, len(u.Tasks))
		copy(c.Tasks, u.Tasks)
	}
	return &c
}

// TaskCounts returns how many tasks are completed and how many exist.
func (u *User) TaskCounts() (completed, total int) {
	for _, t := range u.Tasks {
		if t.Completed {
			completed++
		}
	}
	return completed, len(u.Tasks)
}
