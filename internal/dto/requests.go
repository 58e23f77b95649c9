package dto

import (
	"github.com/kboat10/babs10/internal/ledger"
)

type CreateCustomerRequestDTO struct {
	Name           string   `json:"name" validate:"required,max=200" example:"Kwasi"`
	InitialBalance *float64 `json:"initialBalance,omitempty" example:"700"`
}

type AdjustBalanceRequestDTO struct {
	Amount float64 `json:"amount" validate:"required" example:"700"`
	Reason string  `json:"reason,omitempty" example:"Cash top-up"`
}

type SaveOrderRequestDTO struct {
	OrderRef  string    `json:"orderRef" example:"AMZ-1"`
	OrderDate string    `json:"orderDate" example:"2025-08-21"`
	Items     []ItemDTO `json:"items" validate:"dive"`
	Comments  string    `json:"comments" example:""`
}

func (r SaveOrderRequestDTO) Input() ledger.OrderInput {
	return ledger.OrderInput{
		OrderRef:  r.OrderRef,
		OrderDate: r.OrderDate,
		Items:     ItemsFromDTO(r.Items),
		Comments:  r.Comments,
	}
}

type SaveOrderResponseDTO struct {
	Order    OrderDTO            `json:"order"`
	Customer CustomerResponseDTO `json:"customer"`
}

type DeleteOrdersRequestDTO struct {
	OrderIDs []string `json:"orderIds" validate:"required"`
}

type BreakdownRequestDTO struct {
	CustomerID string              `json:"customerId,omitempty" example:"18945c54-e3f0-4f17-9484-e6e961317a45"`
	Format     string              `json:"format" validate:"required" example:"simple"`
	Order      SaveOrderRequestDTO `json:"order"`
}

type BreakdownResponseDTO struct {
	Format              string `json:"format" example:"simple"`
	Text                string `json:"text"`
	InsufficientBalance bool   `json:"insufficientBalance"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

type BackupListResponseDTO struct {
	Files []string `json:"files" example:"ledger_20250824T125034.000000000Z.json"`
}

type RestoreRequestDTO struct {
	File string `json:"file" validate:"required" example:"ledger_20250824T125034.000000000Z.json"`
}

type RestoreResponseDTO struct {
	Message   string `json:"message" example:"Ledger restored"`
	Customers int    `json:"customers" example:"2"`
}
