package models

import "time"

type TaskType string

const (
	TaskTypeReceive TaskType = "receive"
	TaskTypeGive    TaskType = "give"
	TaskTypeTotal   TaskType = "total"
	TaskTypeBalance TaskType = "balance"
	TaskTypeDaily   TaskType = "daily"
	TaskTypeWeekly  TaskType = "weekly"
	TaskTypeMonthly TaskType = "monthly"
)

// TaskDefinition is one entry of the static 25-task catalog shared by all
// users.
type TaskDefinition struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Target      float64  `json:"target"`
	Type        TaskType `json:"type"`
}

// TaskInstance is a per-user materialization of a TaskDefinition.
// RequiredPayment is frozen at generation time and never recomputed, even if
// the user's quota changes later.
type TaskInstance struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Target          float64    `json:"target"`
	Type            TaskType   `json:"type"`
	Progress        float64    `json:"progress"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt"`
	RequiredPayment float64    `json:"requiredPayment"`
}

// paymentMultipliers marks the five gated catalog entries. All other tasks
// have multiplier 0 and never demand a payment.
var paymentMultipliers = map[int]float64{
	3:  1.89,
	8:  4.7,
	13: 15.3,
	20: 20,
	24: 32,
}

// PaymentMultiplier returns the payment multiplier for a catalog id, 0 for
// ungated tasks.
func PaymentMultiplier(taskID int) float64 {
	return paymentMultipliers[taskID]
}

var catalog = []TaskDefinition{
	{ID: 1, Title: "Receive your first order", Description: "Receive your first order and get started", Target: 1, Type: TaskTypeReceive},
	{ID: 2, Title: "Receive 5 orders", Description: "Receive 5 orders", Target: 5, Type: TaskTypeReceive},
	{ID: 3, Title: "Receive 10 orders", Description: "Receive 10 orders", Target: 10, Type: TaskTypeReceive},
	{ID: 4, Title: "Receive 20 orders", Description: "Receive 20 orders", Target: 20, Type: TaskTypeReceive},
	{ID: 5, Title: "Receive 50 orders", Description: "Receive 50 orders", Target: 50, Type: TaskTypeReceive},
	{ID: 6, Title: "Receive 100 orders", Description: "Receive 100 orders", Target: 100, Type: TaskTypeReceive},
	{ID: 7, Title: "Give your first order", Description: "Give your first order", Target: 1, Type: TaskTypeGive},
	{ID: 8, Title: "Give 5 orders", Description: "Give 5 orders", Target: 5, Type: TaskTypeGive},
	{ID: 9, Title: "Give 10 orders", Description: "Give 10 orders", Target: 10, Type: TaskTypeGive},
	{ID: 10, Title: "Give 20 orders", Description: "Give 20 orders", Target: 20, Type: TaskTypeGive},
	{ID: 11, Title: "Give 50 orders", Description: "Give 50 orders", Target: 50, Type: TaskTypeGive},
	{ID: 12, Title: "Give 100 orders", Description: "Give 100 orders", Target: 100, Type: TaskTypeGive},
	{ID: 13, Title: "50 total transactions", Description: "Complete 50 transactions in total (receive+give)", Target: 50, Type: TaskTypeTotal},
	{ID: 14, Title: "100 total transactions", Description: "Complete 100 transactions in total (receive+give)", Target: 100, Type: TaskTypeTotal},
	{ID: 15, Title: "200 total transactions", Description: "Complete 200 transactions in total (receive+give)", Target: 200, Type: TaskTypeTotal},
	{ID: 16, Title: "Balance of 500", Description: "Reach a balance of 500", Target: 500, Type: TaskTypeBalance},
	{ID: 17, Title: "Balance of 1000", Description: "Reach a balance of 1000", Target: 1000, Type: TaskTypeBalance},
	{ID: 18, Title: "Balance of 5000", Description: "Reach a balance of 5000", Target: 5000, Type: TaskTypeBalance},
	{ID: 19, Title: "Balance of 10000", Description: "Reach a balance of 10000", Target: 10000, Type: TaskTypeBalance},
	{ID: 20, Title: "10 transactions in a day", Description: "Complete 10 transactions within one day", Target: 10, Type: TaskTypeDaily},
	{ID: 21, Title: "25 transactions in a day", Description: "Complete 25 transactions within one day", Target: 25, Type: TaskTypeDaily},
	{ID: 22, Title: "50 transactions in a day", Description: "Complete 50 transactions within one day", Target: 50, Type: TaskTypeDaily},
	{ID: 23, Title: "100 transactions in a week", Description: "Complete 100 transactions within one week", Target: 100, Type: TaskTypeWeekly},
	{ID: 24, Title: "250 transactions in a week", Description: "Complete 250 transactions within one week", Target: 250, Type: TaskTypeWeekly},
	{ID: 25, Title: "500 transactions in a month", Description: "Complete 500 transactions within one month", Target: 500, Type: TaskTypeMonthly},
}

// Catalog returns the fixed, ordered task catalog. Callers must not mutate
// the returned slice.
func Catalog() []TaskDefinition {
	return catalog
}
