package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/handlers/common"
	"github.com/kboat10/babs10/internal/service/authservice"
	"github.com/kboat10/babs10/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, pin string) (*domain.User, error)
	Authenticate(ctx context.Context, email, pin string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func userResponse(u domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an operator account with an email and a numeric PIN
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		422		{object}	utils.Response	"Validation error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	user, err := h.authService.Register(r.Context(), req.Email, req.Pin)
	if err != nil {
		if errors.Is(err, authservice.ErrUserAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		User:    userResponse(*user),
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Sign in with email and PIN and get a JWT in the Authorization header
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/signin [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !common.DecodeJSON(w, r, &req) {
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Pin)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
		User:    userResponse(*user),
	})
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	List registered operator accounts without their PIN hashes
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		response[i] = userResponse(u)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUser godoc
//
//	@Summary		Get user by email
//	@Tags			Users
//	@Produce		json
//	@Param			email	path		string	true	"User email"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{email} [get]
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userResponse(*user))
}
