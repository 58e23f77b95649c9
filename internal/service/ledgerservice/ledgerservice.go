package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/ledger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	LoadLedger(ctx context.Context, userID string) ([]byte, error)
	SaveLedger(ctx context.Context, userID string, state []byte) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// Service keeps one ledger.Book per identity. All access goes through mu.
type Service struct {
	repo      Repo
	publisher Publisher
	opts      []ledger.Option
	now       func() time.Time

	mu    sync.Mutex
	books map[string]*ledger.Book
}

func New(repo Repo, publisher Publisher, opts ...ledger.Option) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
		books:     make(map[string]*ledger.Book),
	}
}

// book must be called with s.mu held.
func (s *Service) book(ctx context.Context, userID string) (*ledger.Book, error) {
	if b, ok := s.books[userID]; ok {
		return b, nil
	}
	state, err := s.repo.LoadLedger(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load ledger", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	customers, err := dto.DecodeLedger(state)
	if err != nil {
		zap.L().Error("failed to decode ledger", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	b := ledger.Restore(customers, s.opts...)
	s.books[userID] = b
	return b, nil
}

func (s *Service) read(ctx context.Context, userID string, fn func(*ledger.Book) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.book(ctx, userID)
	if err != nil {
		return err
	}
	return fn(b)
}

// mutate runs fn against a copy of the ledger and swaps the copy in only
// after it has been persisted.
func (s *Service) mutate(ctx context.Context, userID string, fn func(*ledger.Book) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.book(ctx, userID)
	if err != nil {
		return err
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return err
	}
	state, err := dto.EncodeLedger(next.Snapshot())
	if err != nil {
		zap.L().Error("failed to encode ledger", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	if err := s.repo.SaveLedger(ctx, userID, state); err != nil {
		zap.L().Error("failed to save ledger", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("save ledger: %w", err)
	}
	s.books[userID] = next
	return nil
}

// RestoreLedger replaces the whole ledger of userID with state. Nothing is
// persisted unless every customer decodes and every order total parses.
func (s *Service) RestoreLedger(ctx context.Context, userID string, state []byte) (int, error) {
	customers, err := dto.DecodeLedger(state)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return 0, err
		}
		return 0, domain.NewValidationError("ledger", err.Error())
	}
	for _, c := range customers {
		if c.ID == "" {
			return 0, domain.NewValidationError("customer", "id is required")
		}
		if _, err := ledger.OrdersTotal(c.Orders); err != nil {
			return 0, fmt.Errorf("customer %s: %w", c.ID, err)
		}
	}
	next := ledger.Restore(customers, s.opts...)
	restored := next.Snapshot()
	canonical, err := dto.EncodeLedger(restored)
	if err != nil {
		return 0, err
	}

	if err := s.replace(ctx, userID, next, canonical); err != nil {
		return 0, err
	}
	zap.L().Info("ledger replaced", zap.String("user_id", userID), zap.Int("customers", len(restored)))
	s.publish(ctx, domain.LedgerEvent{
		Type:   domain.EventLedgerRestored,
		UserID: userID,
		Amount: decimal.Zero,
	})
	return len(restored), nil
}

// replace persists state and then drops any cached book for userID in
// favor of next.
func (s *Service) replace(ctx context.Context, userID string, next *ledger.Book, state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveLedger(ctx, userID, state); err != nil {
		zap.L().Error("failed to save ledger", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("save ledger: %w", err)
	}
	s.books[userID] = next
	return nil
}

func (s *Service) publish(ctx context.Context, event domain.LedgerEvent) {
	event.OccurredAt = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish ledger event",
			zap.String("type", string(event.Type)),
			zap.String("user_id", event.UserID),
			zap.Error(err))
	}
}

func (s *Service) ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := s.read(ctx, userID, func(b *ledger.Book) error {
		customers = b.Customers()
		return nil
	})
	return customers, err
}

func (s *Service) GetCustomer(ctx context.Context, userID, customerID string) (*domain.Customer, error) {
	var customer *domain.Customer
	err := s.read(ctx, userID, func(b *ledger.Book) error {
		var err error
		customer, err = b.Customer(customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Service) CreateCustomer(ctx context.Context, userID, name string, initialBalance *float64) (*domain.Customer, error) {
	var customer *domain.Customer
	err := s.mutate(ctx, userID, func(b *ledger.Book) error {
		var err error
		customer, err = b.CreateCustomer(name, initialBalance)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("customer created", zap.String("user_id", userID), zap.String("customer_id", customer.ID))
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventCustomerCreated,
		UserID:     userID,
		CustomerID: customer.ID,
		Amount:     customer.MoneyGiven,
	})
	return customer, nil
}

func (s *Service) TopUp(ctx context.Context, userID, customerID string, amount float64, reason string) (*domain.Customer, error) {
	return s.adjust(ctx, userID, customerID, amount, ledger.TopUp, reason)
}

func (s *Service) Refund(ctx context.Context, userID, customerID string, amount float64, reason string) (*domain.Customer, error) {
	return s.adjust(ctx, userID, customerID, amount, ledger.Refund, reason)
}

func (s *Service) adjust(ctx context.Context, userID, customerID string, amount float64, kind ledger.AdjustmentKind, reason string) (*domain.Customer, error) {
	var customer *domain.Customer
	err := s.mutate(ctx, userID, func(b *ledger.Book) error {
		var err error
		customer, err = b.AdjustBalance(customerID, amount, kind, reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	eventType := domain.EventBalanceTopUp
	if kind == ledger.Refund {
		eventType = domain.EventBalanceRefund
	}
	s.publish(ctx, domain.LedgerEvent{
		Type:       eventType,
		UserID:     userID,
		CustomerID: customerID,
		Amount:     decimal.NewFromFloat(amount),
		Reason:     reason,
	})
	return customer, nil
}

// SaveOrder adds a new order, or replaces existingOrderID when it is set.
func (s *Service) SaveOrder(ctx context.Context, userID, customerID string, input ledger.OrderInput, existingOrderID string) (*domain.Order, *domain.Customer, error) {
	var (
		order    *domain.Order
		customer *domain.Customer
	)
	err := s.mutate(ctx, userID, func(b *ledger.Book) error {
		var err error
		if order, err = b.SaveOrder(customerID, input, existingOrderID); err != nil {
			return err
		}
		customer, err = b.Customer(customerID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	total, _ := ledger.OrderTotal(*order)
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventOrderSaved,
		UserID:     userID,
		CustomerID: customerID,
		OrderIDs:   []string{order.ID},
		Amount:     total,
	})
	return order, customer, nil
}

func (s *Service) DeleteOrders(ctx context.Context, userID, customerID string, orderIDs []string) (*domain.Customer, error) {
	var customer *domain.Customer
	err := s.mutate(ctx, userID, func(b *ledger.Book) error {
		var err error
		customer, err = b.DeleteOrders(customerID, orderIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventOrdersDeleted,
		UserID:     userID,
		CustomerID: customerID,
		OrderIDs:   orderIDs,
		Amount:     customer.TotalSpent,
	})
	return customer, nil
}

func (s *Service) DeleteAllOrders(ctx context.Context, userID, customerID string) (*domain.Customer, error) {
	var (
		customer *domain.Customer
		removed  []string
	)
	err := s.mutate(ctx, userID, func(b *ledger.Book) error {
		before, err := b.Customer(customerID)
		if err != nil {
			return err
		}
		for _, o := range before.Orders {
			removed = append(removed, o.ID)
		}
		customer, err = b.DeleteAllOrders(customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventOrdersDeleted,
		UserID:     userID,
		CustomerID: customerID,
		OrderIDs:   removed,
		Amount:     decimal.Zero,
	})
	return customer, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, userID, customerID string) error {
	err := s.mutate(ctx, userID, func(b *ledger.Book) error {
		return b.DeleteCustomer(customerID)
	})
	if err != nil {
		return err
	}
	zap.L().Info("customer deleted", zap.String("user_id", userID), zap.String("customer_id", customerID))
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventCustomerDeleted,
		UserID:     userID,
		CustomerID: customerID,
		Amount:     decimal.Zero,
	})
	return nil
}

// CurrentOrderBreakdown renders an unsaved order. customerID may be empty.
func (s *Service) CurrentOrderBreakdown(ctx context.Context, userID, customerID string, input ledger.OrderInput, format string) (*domain.Breakdown, error) {
	var breakdown *domain.Breakdown
	err := s.read(ctx, userID, func(b *ledger.Book) error {
		var customer *domain.Customer
		if customerID != "" {
			var err error
			if customer, err = b.Customer(customerID); err != nil {
				return err
			}
		}
		text, err := ledger.CurrentOrderBreakdown(customer, input, ledger.Format(format))
		if err != nil {
			return err
		}
		total, err := ledger.ItemsTotal(input.Items)
		if err != nil {
			return err
		}
		f, _ := ledger.ParseFormat(format)
		breakdown = &domain.Breakdown{
			Format:              string(f),
			Text:                text,
			InsufficientBalance: customer != nil && ledger.InsufficientBalance(customer, total),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (s *Service) CustomerBreakdown(ctx context.Context, userID, customerID, format string) (*domain.Breakdown, error) {
	var breakdown *domain.Breakdown
	err := s.read(ctx, userID, func(b *ledger.Book) error {
		customer, err := b.Customer(customerID)
		if err != nil {
			return err
		}
		text, err := ledger.CustomerBreakdown(customer, ledger.Format(format))
		if err != nil {
			return err
		}
		f, _ := ledger.ParseFormat(format)
		breakdown = &domain.Breakdown{Format: string(f), Text: text}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}
