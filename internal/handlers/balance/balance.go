package balance

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/handlers/common"
	"github.com/kboat10/babs10/pkg/utils"
)

type Service interface {
	TopUp(ctx context.Context, userID, customerID string, amount float64, reason string) (*domain.Customer, error)
	Refund(ctx context.Context, userID, customerID string, amount float64, reason string) (*domain.Customer, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

type adjustFunc func(ctx context.Context, userID, customerID string, amount float64, reason string) (*domain.Customer, error)

func (h *BalanceHandler) adjust(w http.ResponseWriter, r *http.Request, fn adjustFunc) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	var req dto.AdjustBalanceRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	customer, err := fn(r.Context(), userID, chi.URLParam(r, "customerID"), req.Amount, req.Reason)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CustomerResponse(*customer))
}

// TopUp godoc
//
//	@Summary		Top up customer balance
//	@Description	Add money handed over by the customer
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		string						true	"Customer id"
//	@Param			request		body		dto.AdjustBalanceRequestDTO	true	"Amount to add"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		422			{object}	utils.Response	"Amount must be positive"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/topup [post]
func (h *BalanceHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledgerService.TopUp)
}

// Refund godoc
//
//	@Summary		Record a refund
//	@Description	Credit the customer's balance for a returned item. The reason is published with the ledger event.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		string						true	"Customer id"
//	@Param			request		body		dto.AdjustBalanceRequestDTO	true	"Refund amount and reason"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		422			{object}	utils.Response	"Amount must be positive"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/refund [post]
func (h *BalanceHandler) Refund(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledgerService.Refund)
}
