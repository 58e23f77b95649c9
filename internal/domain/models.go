package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	PinHash   string    `db:"pin_hash"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Item struct {
	Desc  string
	Qty   string
	Color string
	Size  string
	Price string
}

type Order struct {
	ID        string
	OrderRef  string
	OrderDate string
	Items     []Item
	Comments  string
	SavedAt   time.Time
}

type Customer struct {
	ID          string
	Name        string
	MoneyGiven  decimal.Decimal
	TotalSpent  decimal.Decimal
	Orders      []Order
	CreatedAt   time.Time
	LastUpdated time.Time
}

// Clone returns a deep copy, so a mutation on the copy never leaks into
// the receiver's order or item slices.
func (c *Customer) Clone() *Customer {
	cp := *c
	cp.Orders = make([]Order, len(c.Orders))
	for i, o := range c.Orders {
		cp.Orders[i] = o.Clone()
	}
	return &cp
}

func (o Order) Clone() Order {
	cp := o
	cp.Items = append([]Item(nil), o.Items...)
	return cp
}

// LedgerSnapshot is the persisted state of one identity's ledger.
type LedgerSnapshot struct {
	UserID    string    `db:"user_id"`
	State     []byte    `db:"state"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Breakdown is a rendered text summary of an order or a customer.
type Breakdown struct {
	Format              string
	Text                string
	InsufficientBalance bool
}
