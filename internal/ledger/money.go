package ledger

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/kboat10/babs10/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidPrice marks an item price that does not parse as a decimal
// number. It always arrives wrapped together with domain.ErrValidation.
var ErrInvalidPrice = errors.New("invalid price")

// maxDecimalLen bounds the characters a price or amount may carry.
// Together with plainDecimal it keeps exponent notation such as
// "1e400000000" out of the decimal arithmetic.
const maxDecimalLen = 40

var plainDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

func parsePlain(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if len(s) > maxDecimalLen || !plainDecimal.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	return d, err == nil
}

func clip(s string) string {
	if len(s) > maxDecimalLen {
		return s[:maxDecimalLen] + "..."
	}
	return s
}

// ParsePrice accepts plain decimal notation only.
func ParsePrice(price string) (decimal.Decimal, error) {
	d, ok := parsePlain(price)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %w",
			domain.NewValidationError("price", fmt.Sprintf("%q is not a plain decimal number", clip(price))), ErrInvalidPrice)
	}
	return d, nil
}

// ParseAmount is ParsePrice for stored money amounts.
func ParseAmount(field, amount string) (decimal.Decimal, error) {
	d, ok := parsePlain(amount)
	if !ok {
		return decimal.Zero, domain.NewValidationError(field, fmt.Sprintf("%q is not a plain decimal number", clip(amount)))
	}
	return d, nil
}

// ItemsTotal sums the parsed prices. A single unparseable price makes the
// whole total invalid.
func ItemsTotal(items []domain.Item) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		price, err := ParsePrice(item.Price)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(price)
	}
	return total, nil
}

func OrderTotal(order domain.Order) (decimal.Decimal, error) {
	return ItemsTotal(order.Items)
}

// OrdersTotal is the fold of OrderTotal over orders.
func OrdersTotal(orders []domain.Order) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, order := range orders {
		t, err := OrderTotal(order)
		if err != nil {
			return decimal.Zero, fmt.Errorf("order %s: %w", order.ID, err)
		}
		total = total.Add(t)
	}
	return total, nil
}

func CustomerBalance(c *domain.Customer) decimal.Decimal {
	return c.MoneyGiven.Sub(c.TotalSpent)
}

// InsufficientBalance reports whether an order of the given total would
// take the customer below zero.
func InsufficientBalance(c *domain.Customer, total decimal.Decimal) bool {
	return total.IsPositive() && total.GreaterThan(CustomerBalance(c))
}

func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func FormatBalance(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "Owes " + FormatAmount(balance.Abs())
	}
	return FormatAmount(balance)
}

func amountFromFloat(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, domain.NewValidationError(field, "must be a finite number")
	}
	return decimal.NewFromFloat(v), nil
}
