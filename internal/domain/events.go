package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventCustomerCreated EventType = "customer.created"
	EventCustomerDeleted EventType = "customer.deleted"
	EventBalanceTopUp    EventType = "balance.topup"
	EventBalanceRefund   EventType = "balance.refund"
	EventOrderSaved      EventType = "order.saved"
	EventOrdersDeleted   EventType = "orders.deleted"
	EventLedgerRestored  EventType = "ledger.restored"
)

// LedgerEvent describes a committed ledger mutation.
type LedgerEvent struct {
	Type       EventType       `json:"type"`
	UserID     string          `json:"userId"`
	CustomerID string          `json:"customerId"`
	OrderIDs   []string        `json:"orderIds,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}
