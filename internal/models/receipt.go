package models

import "time"

type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusApproved ReceiptStatus = "approved"
	ReceiptStatusRejected ReceiptStatus = "rejected"
)

// PaymentReceipt records a user-uploaded proof of payment. FileName is the
// opaque stored-file identifier handed over by the upload layer; the ledger
// never touches file bytes. Approval side-effects the owning user's HasPaid.
type PaymentReceipt struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Username     string        `json:"username"`
	Amount       float64       `json:"amount"`
	Description  string        `json:"description"`
	FileName     string        `json:"fileName"`
	OriginalName string        `json:"originalName"`
	Status       ReceiptStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	ReviewedBy   string        `json:"reviewedBy"`
	ReviewedAt   *time.Time    `json:"reviewedAt"`
}
