package customers

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
	ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, userID, customerID string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, userID, name string, initialBalance *float64) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, userID, customerID string) error
}

type CustomerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *CustomerHandler {
	return &CustomerHandler{
		ledgerService: ledgerService,
	}
}

// ListCustomers godoc
//
//	@Summary		List customers
//	@Description	All customers of the authenticated user, sorted by name
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		string	false	"Must match the authenticated user"
//	@Success		200		{array}		dto.CustomerResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	customers, err := h.ledgerService.ListCustomers(r.Context(), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CustomersResponse(customers))
}

// CreateCustomer godoc
//
//	@Summary		Create customer
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCustomerRequestDTO	true	"New customer"
//	@Success		201		{object}	dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Validation error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	customer, err := h.ledgerService.CreateCustomer(r.Context(), userID, req.Name, req.InitialBalance)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CustomerResponse(*customer))
}

// GetCustomer godoc
//
//	@Summary		Get customer
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer id"
//	@Success		200			{object}	dto.CustomerResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	customer, err := h.ledgerService.GetCustomer(r.Context(), userID, chi.URLParam(r, "customerID"))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CustomerResponse(*customer))
}

// DeleteCustomer godoc
//
//	@Summary		Delete customer
//	@Description	Remove the customer together with all of their orders
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerID	path		string	true	"Customer id"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(w, r)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteCustomer(r.Context(), userID, chi.URLParam(r, "customerID")); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Customer deleted"})
}
