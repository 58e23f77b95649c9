// Package ledger keeps one identity's customers, their balances and order
// histories. A Book is not safe for concurrent use; callers serialize access.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/shopspring/decimal"
)

type AdjustmentKind string

const (
	TopUp  AdjustmentKind = "topup"
	Refund AdjustmentKind = "refund"
)

const orderDateLayout = "2006-01-02"

// OrderInput is the editable part of an order.
type OrderInput struct {
	OrderRef  string
	OrderDate string
	Items     []domain.Item
	Comments  string
}

type Option func(*Book)

func WithClock(now func() time.Time) Option {
	return func(b *Book) {
		b.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(b *Book) {
		b.newID = newID
	}
}

type Book struct {
	customers map[string]*domain.Customer
	now       func() time.Time
	newID     func() string
}

func NewBook(opts ...Option) *Book {
	b := &Book{
		customers: make(map[string]*domain.Customer),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Restore builds a book from previously persisted customers.
func Restore(customers []domain.Customer, opts ...Option) *Book {
	b := NewBook(opts...)
	for i := range customers {
		c := customers[i]
		b.customers[c.ID] = c.Clone()
	}
	return b
}

func (b *Book) Clone() *Book {
	cp := &Book{
		customers: make(map[string]*domain.Customer, len(b.customers)),
		now:       b.now,
		newID:     b.newID,
	}
	for id, c := range b.customers {
		cp.customers[id] = c.Clone()
	}
	return cp
}

func (b *Book) Len() int {
	return len(b.customers)
}

// Customers returns copies sorted by name, then id.
func (b *Book) Customers() []domain.Customer {
	out := make([]domain.Customer, 0, len(b.customers))
	for _, c := range b.customers {
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Snapshot exports every customer for persistence.
func (b *Book) Snapshot() []domain.Customer {
	return b.Customers()
}

func (b *Book) Customer(id string) (*domain.Customer, error) {
	c, ok := b.customers[id]
	if !ok {
		return nil, domain.NewNotFoundError("customer", id)
	}
	return c.Clone(), nil
}

func (b *Book) CreateCustomer(name string, initialBalance *float64) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	moneyGiven := decimal.Zero
	if initialBalance != nil {
		d, err := amountFromFloat("initialBalance", *initialBalance)
		if err != nil {
			return nil, err
		}
		moneyGiven = d
	}

	now := b.now()
	c := &domain.Customer{
		ID:          b.newID(),
		Name:        name,
		MoneyGiven:  moneyGiven,
		TotalSpent:  decimal.Zero,
		Orders:      []domain.Order{},
		CreatedAt:   now,
		LastUpdated: now,
	}
	b.customers[c.ID] = c
	return c.Clone(), nil
}

// AdjustBalance credits the customer. Top-ups and refunds both increase
// MoneyGiven; a refund additionally requires a reason.
func (b *Book) AdjustBalance(customerID string, amount float64, kind AdjustmentKind, reason string) (*domain.Customer, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return nil, domain.NewNotFoundError("customer", customerID)
	}
	d, err := amountFromFloat("amount", amount)
	if err != nil {
		return nil, err
	}
	if !d.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be greater than zero")
	}
	switch kind {
	case TopUp:
	case Refund:
		if strings.TrimSpace(reason) == "" {
			return nil, domain.NewValidationError("reason", "is required for a refund")
		}
	default:
		return nil, domain.NewValidationError("kind", "must be topup or refund")
	}

	c.MoneyGiven = c.MoneyGiven.Add(d)
	c.LastUpdated = b.now()
	return c.Clone(), nil
}

// SaveOrder appends a new order, or replaces existingOrderID in place when
// it is non-empty. TotalSpent is refolded over all orders either way.
func (b *Book) SaveOrder(customerID string, input OrderInput, existingOrderID string) (*domain.Order, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return nil, domain.NewNotFoundError("customer", customerID)
	}
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	idx := -1
	if existingOrderID != "" {
		for i := range c.Orders {
			if c.Orders[i].ID == existingOrderID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.NewNotFoundError("order", existingOrderID)
		}
	}

	now := b.now()
	order := domain.Order{
		OrderRef:  strings.TrimSpace(input.OrderRef),
		OrderDate: strings.TrimSpace(input.OrderDate),
		Items:     append([]domain.Item(nil), input.Items...),
		Comments:  input.Comments,
		SavedAt:   now,
	}

	orders := make([]domain.Order, len(c.Orders), len(c.Orders)+1)
	copy(orders, c.Orders)
	if idx >= 0 {
		order.ID = existingOrderID
		orders[idx] = order
	} else {
		order.ID = b.newID()
		orders = append(orders, order)
	}

	total, err := OrdersTotal(orders)
	if err != nil {
		return nil, err
	}
	c.Orders = orders
	c.TotalSpent = total
	c.LastUpdated = now
	return &order, nil
}

// DeleteOrders drops every order whose id is in orderIDs. Unknown ids are
// ignored.
func (b *Book) DeleteOrders(customerID string, orderIDs []string) (*domain.Customer, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return nil, domain.NewNotFoundError("customer", customerID)
	}
	drop := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		drop[id] = struct{}{}
	}

	kept := make([]domain.Order, 0, len(c.Orders))
	for _, o := range c.Orders {
		if _, ok := drop[o.ID]; !ok {
			kept = append(kept, o)
		}
	}
	total, err := OrdersTotal(kept)
	if err != nil {
		return nil, err
	}
	c.Orders = kept
	c.TotalSpent = total
	c.LastUpdated = b.now()
	return c.Clone(), nil
}

func (b *Book) DeleteAllOrders(customerID string) (*domain.Customer, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return nil, domain.NewNotFoundError("customer", customerID)
	}
	c.Orders = []domain.Order{}
	c.TotalSpent = decimal.Zero
	c.LastUpdated = b.now()
	return c.Clone(), nil
}

func (b *Book) DeleteCustomer(customerID string) error {
	if _, ok := b.customers[customerID]; !ok {
		return domain.NewNotFoundError("customer", customerID)
	}
	delete(b.customers, customerID)
	return nil
}

func validateOrderInput(input OrderInput) error {
	if date := strings.TrimSpace(input.OrderDate); date != "" {
		if _, err := time.Parse(orderDateLayout, date); err != nil {
			return domain.NewValidationError("orderDate", "must be a yyyy-mm-dd date")
		}
	}
	_, err := ItemsTotal(input.Items)
	return err
}
