package breakdown

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/handlers/common"
	"github.com/kboat10/babs10/internal/ledger"
	"github.com/kboat10/babs10/pkg/utils"
)

type Service interface {
	CurrentOrderBreakdown(ctx context.Context, userID, customerID string, input ledger.OrderInput, format string) (*domain.Breakdown, error)
	CustomerBreakdown(ctx context.Context, userID, customerID, format string) (*domain.Breakdown, error)
}

type BreakdownHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BreakdownHandler {
	return &BreakdownHandler{
		ledgerService: ledgerService,
	}
}

func breakdownResponse(b *domain.Breakdown) dto.BreakdownResponseDTO {
	return dto.BreakdownResponseDTO{
		Format:              b.Format,
		Text:                b.Text,
		InsufficientBalance: b.InsufficientBalance,
	}
}

// CurrentOrderBreakdown godoc
//
//	@Summary		Breakdown of an unsaved order
//	@Description	Render the order being entered as copyable text. With a customerId the text includes their balance and insufficientBalance is set when the order exceeds it.
//	@Tags			Breakdown
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BreakdownRequestDTO	true	"Order and format"
//	@Success		200		{object}	dto.BreakdownResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		422		{object}	utils.Response	"Unknown format or invalid price"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/breakdown [post]
func (h *BreakdownHandler) CurrentOrderBreakdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	var req dto.BreakdownRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	b, err := h.ledgerService.CurrentOrderBreakdown(r.Context(), userID, req.CustomerID, req.Order.Input(), req.Format)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, breakdownResponse(b))
}

// CustomerBreakdown godoc
//
//	@Summary		Breakdown of a customer's orders
//	@Tags			Breakdown
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer id"
//	@Param			format		query		string	false	"simple (default) or detailed"
//	@Success		200			{object}	dto.BreakdownResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		422			{object}	utils.Response	"Unknown format or no orders"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/breakdown [get]
func (h *BreakdownHandler) CustomerBreakdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(ledger.FormatSimple)
	}
	b, err := h.ledgerService.CustomerBreakdown(r.Context(), userID, chi.URLParam(r, "customerID"), format)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, breakdownResponse(b))
}
