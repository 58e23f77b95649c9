package ledger

import (
	"fmt"
	"strings"

	"github.com/kboat10/babs10/internal/domain"
)

type Format string

const (
	FormatSimple   Format = "simple"
	FormatDetailed Format = "detailed"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSimple, FormatDetailed:
		return f, nil
	default:
		return "", domain.NewValidationError("format", fmt.Sprintf("%q is not simple or detailed", s))
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func writeItemLine(sb *strings.Builder, indent string, n int, item domain.Item) {
	fmt.Fprintf(sb, "%s%d. %s - Qty: %s, Color: %s, Size: %s, Price: $%s\n",
		indent, n, item.Desc, item.Qty, item.Color, item.Size, item.Price)
}

// CurrentOrderBreakdown renders an unsaved order. customer may be nil when
// no customer is selected.
func CurrentOrderBreakdown(customer *domain.Customer, order OrderInput, format Format) (string, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return "", err
	}
	total, err := ItemsTotal(order.Items)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if format == FormatSimple {
		fmt.Fprintf(&sb, "Order Total: %s\n", FormatAmount(total))
		if customer != nil {
			fmt.Fprintf(&sb, "Customer Balance: %s\n", FormatAmount(CustomerBalance(customer)))
			fmt.Fprintf(&sb, "Customer: %s\n", customer.Name)
		} else {
			sb.WriteString("No customer selected.\n")
		}
		sb.WriteString("Items:")
		for _, item := range order.Items {
			fmt.Fprintf(&sb, "\n%s - $%s", item.Desc, item.Price)
		}
		return sb.String(), nil
	}

	name := ""
	if customer != nil {
		name = customer.Name
	}
	sb.WriteString("ORDER BREAKDOWN\n\n")
	fmt.Fprintf(&sb, "Customer: %s\n", orNA(name))
	fmt.Fprintf(&sb, "Order Ref: %s\n", orNA(order.OrderRef))
	fmt.Fprintf(&sb, "Order Date: %s\n\n", orNA(order.OrderDate))
	sb.WriteString("Items:\n")
	for i, item := range order.Items {
		writeItemLine(&sb, "", i+1, item)
	}
	fmt.Fprintf(&sb, "\nTotal: %s", FormatAmount(total))
	return sb.String(), nil
}

// CustomerBreakdown renders every saved order of a customer.
func CustomerBreakdown(customer *domain.Customer, format Format) (string, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return "", err
	}
	if len(customer.Orders) == 0 {
		return "", domain.NewValidationError("orders", "no orders found for this customer")
	}
	grand, err := OrdersTotal(customer.Orders)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if format == FormatDetailed {
		sb.WriteString("CUSTOMER ORDER BREAKDOWN\n\n")
	}
	fmt.Fprintf(&sb, "Customer: %s\n", customer.Name)
	fmt.Fprintf(&sb, "Total Orders: %d\n", len(customer.Orders))
	fmt.Fprintf(&sb, "Customer Balance: %s\n", FormatAmount(CustomerBalance(customer)))
	fmt.Fprintf(&sb, "Total Spent: %s\n\n", FormatAmount(grand))

	if format == FormatSimple {
		sb.WriteString("All Items:")
		for _, order := range customer.Orders {
			for _, item := range order.Items {
				fmt.Fprintf(&sb, "\n%s - $%s", item.Desc, item.Price)
			}
		}
		return sb.String(), nil
	}

	for i, order := range customer.Orders {
		fmt.Fprintf(&sb, "--- ORDER %d ---\n", i+1)
		fmt.Fprintf(&sb, "Order Ref: %s\n", orNA(order.OrderRef))
		fmt.Fprintf(&sb, "Order Date: %s\n", orNA(order.OrderDate))
		sb.WriteString("Items:\n")
		for j, item := range order.Items {
			writeItemLine(&sb, "  ", j+1, item)
		}
		// totals were validated by OrdersTotal above
		total, _ := OrderTotal(order)
		fmt.Fprintf(&sb, "Order Total: %s\n\n", FormatAmount(total))
	}
	fmt.Fprintf(&sb, "GRAND TOTAL: %s", FormatAmount(grand))
	return sb.String(), nil
}
