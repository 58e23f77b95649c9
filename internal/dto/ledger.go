package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/ledger"
	"github.com/shopspring/decimal"
)

const ledgerStateVersion = 1

type ItemDTO struct {
	Desc  string `json:"desc" example:"Amazon 1"`
	Qty   string `json:"qty" example:"1"`
	Color string `json:"color" example:""`
	Size  string `json:"size" example:""`
	Price string `json:"price" example:"60.94"`
}

type OrderDTO struct {
	ID        string    `json:"id" example:"e518c755-0716-4e93-9d59-03fbd36146db"`
	OrderRef  string    `json:"orderRef" example:""`
	OrderDate string    `json:"orderDate" example:"2025-08-21"`
	Items     []ItemDTO `json:"items"`
	Comments  string    `json:"comments" example:""`
	SavedAt   time.Time `json:"savedAt" example:"2025-08-21T02:23:11Z"`
}

// CustomerDTO is the canonical wire and storage shape of a customer.
// Amounts are JSON numbers carried as json.Number so no precision is lost.
type CustomerDTO struct {
	ID          string      `json:"id" example:"18945c54-e3f0-4f17-9484-e6e961317a45"`
	Name        string      `json:"name" example:"Kwasi"`
	MoneyGiven  json.Number `json:"moneyGiven" swaggertype:"number" example:"700"`
	TotalSpent  json.Number `json:"totalSpent" swaggertype:"number" example:"111.38"`
	Orders      []OrderDTO  `json:"orders"`
	CreatedAt   time.Time   `json:"createdAt" example:"2025-08-24T12:50:34Z"`
	LastUpdated time.Time   `json:"lastUpdated" example:"2025-08-24T12:50:34Z"`
}

type CustomerResponseDTO struct {
	CustomerDTO
	Balance     json.Number `json:"balance" swaggertype:"number" example:"588.62"`
	BalanceText string      `json:"balanceText" example:"$588.62"`
}

type ledgerState struct {
	Version   int           `json:"version"`
	Customers []CustomerDTO `json:"customers"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func parseNumber(field string, n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return ledger.ParseAmount(field, n.String())
}

func ItemsToDTO(items []domain.Item) []ItemDTO {
	out := make([]ItemDTO, len(items))
	for i, it := range items {
		out[i] = ItemDTO(it)
	}
	return out
}

func ItemsFromDTO(items []ItemDTO) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = domain.Item(it)
	}
	return out
}

func OrderToDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:        o.ID,
		OrderRef:  o.OrderRef,
		OrderDate: o.OrderDate,
		Items:     ItemsToDTO(o.Items),
		Comments:  o.Comments,
		SavedAt:   o.SavedAt,
	}
}

func OrderFromDTO(o OrderDTO) domain.Order {
	return domain.Order{
		ID:        o.ID,
		OrderRef:  o.OrderRef,
		OrderDate: o.OrderDate,
		Items:     ItemsFromDTO(o.Items),
		Comments:  o.Comments,
		SavedAt:   o.SavedAt,
	}
}

func CustomerToDTO(c domain.Customer) CustomerDTO {
	orders := make([]OrderDTO, len(c.Orders))
	for i, o := range c.Orders {
		orders[i] = OrderToDTO(o)
	}
	return CustomerDTO{
		ID:          c.ID,
		Name:        c.Name,
		MoneyGiven:  number(c.MoneyGiven),
		TotalSpent:  number(c.TotalSpent),
		Orders:      orders,
		CreatedAt:   c.CreatedAt,
		LastUpdated: c.LastUpdated,
	}
}

func CustomerFromDTO(c CustomerDTO) (domain.Customer, error) {
	moneyGiven, err := parseNumber("moneyGiven", c.MoneyGiven)
	if err != nil {
		return domain.Customer{}, err
	}
	totalSpent, err := parseNumber("totalSpent", c.TotalSpent)
	if err != nil {
		return domain.Customer{}, err
	}
	orders := make([]domain.Order, len(c.Orders))
	for i, o := range c.Orders {
		orders[i] = OrderFromDTO(o)
	}
	return domain.Customer{
		ID:          c.ID,
		Name:        c.Name,
		MoneyGiven:  moneyGiven,
		TotalSpent:  totalSpent,
		Orders:      orders,
		CreatedAt:   c.CreatedAt,
		LastUpdated: c.LastUpdated,
	}, nil
}

func CustomerResponse(c domain.Customer) CustomerResponseDTO {
	balance := ledger.CustomerBalance(&c)
	return CustomerResponseDTO{
		CustomerDTO: CustomerToDTO(c),
		Balance:     number(balance),
		BalanceText: ledger.FormatBalance(balance),
	}
}

func CustomersResponse(customers []domain.Customer) []CustomerResponseDTO {
	out := make([]CustomerResponseDTO, len(customers))
	for i, c := range customers {
		out[i] = CustomerResponse(c)
	}
	return out
}

// EncodeLedger serializes one identity's customers for persistence.
func EncodeLedger(customers []domain.Customer) ([]byte, error) {
	state := ledgerState{
		Version:   ledgerStateVersion,
		Customers: make([]CustomerDTO, len(customers)),
	}
	for i, c := range customers {
		state.Customers[i] = CustomerToDTO(c)
	}
	return json.Marshal(state)
}

func DecodeLedger(data []byte) ([]domain.Customer, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var state ledgerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode ledger state: %w", err)
	}
	if state.Version != ledgerStateVersion {
		return nil, fmt.Errorf("unsupported ledger state version %d", state.Version)
	}
	customers := make([]domain.Customer, 0, len(state.Customers))
	for _, c := range state.Customers {
		customer, err := CustomerFromDTO(c)
		if err != nil {
			return nil, fmt.Errorf("decode customer %s: %w", c.ID, err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}
