package orders

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
	SaveOrder(ctx context.Context, userID, customerID string, input ledger.OrderInput, existingOrderID string) (*domain.Order, *domain.Customer, error)
	DeleteOrders(ctx context.Context, userID, customerID string, orderIDs []string) (*domain.Customer, error)
	DeleteAllOrders(ctx context.Context, userID, customerID string) (*domain.Customer, error)
}

type OrderHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *OrderHandler {
	return &OrderHandler{
		ledgerService: ledgerService,
	}
}

func (h *OrderHandler) save(w http.ResponseWriter, r *http.Request, orderID string, status int) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	var req dto.SaveOrderRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	order, customer, err := h.ledgerService.SaveOrder(r.Context(), userID, chi.URLParam(r, "customerID"), req.Input(), orderID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, status, dto.SaveOrderResponseDTO{
		Order:    dto.OrderToDTO(*order),
		Customer: dto.CustomerResponse(*customer),
	})
}

// AddOrder godoc
//
//	@Summary		Add an order
//	@Description	Save a new order for the customer and recompute their total spent
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		string					true	"Customer id"
//	@Param			request		body		dto.SaveOrderRequestDTO	true	"Order"
//	@Success		201			{object}	dto.SaveOrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		422			{object}	utils.Response	"Invalid order"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "", http.StatusCreated)
}

// UpdateOrder godoc
//
//	@Summary		Edit an order
//	@Description	Replace the contents of an existing order. Its id is kept.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		string					true	"Customer id"
//	@Param			orderID		path		string					true	"Order id"
//	@Param			request		body		dto.SaveOrderRequestDTO	true	"Order"
//	@Success		200			{object}	dto.SaveOrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer or order not found"
//	@Failure		422			{object}	utils.Response	"Invalid order"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/orders/{orderID} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "orderID"), http.StatusOK)
}

// DeleteOrders godoc
//
//	@Summary		Delete orders
//	@Description	Remove the listed orders. Unknown ids are ignored.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customerID	path		string						true	"Customer id"
//	@Param			request		body		dto.DeleteOrdersRequestDTO	true	"Order ids"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		422			{object}	utils.Response	"Validation error"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/orders [delete]
func (h *OrderHandler) DeleteOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	var req dto.DeleteOrdersRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	customer, err := h.ledgerService.DeleteOrders(r.Context(), userID, chi.URLParam(r, "customerID"), req.OrderIDs)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CustomerResponse(*customer))
}

// DeleteAllOrders godoc
//
//	@Summary		Delete all orders
//	@Description	Remove every order of the customer. The balance given is kept.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer id"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/orders/all [delete]
func (h *OrderHandler) DeleteAllOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	customer, err := h.ledgerService.DeleteAllOrders(r.Context(), userID, chi.URLParam(r, "customerID"))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CustomerResponse(*customer))
}
