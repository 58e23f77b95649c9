package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/service/authservice"
	"github.com/kboat10/babs10/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var user = &domain.User{
	ID:      "user-1",
	Email:   "ama@example.com",
	PinHash: "hashedpin",
}

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"email":"ama@example.com","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "ama@example.com", "1234").Return(user, nil)
				service.EXPECT().GenerateToken("user-1").Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusCreated,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "User already exists",
			body: `{"email":"ama@example.com","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "ama@example.com", "1234").Return(nil, authservice.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "user already exists",
		},
		{
			name: "Storage failure",
			body: `{"email":"ama@example.com","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "ama@example.com", "1234").Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Pin with letters",
			body:          `{"email":"ama@example.com","pin":"12ab"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "pin: must contain digits only",
		},
		{
			name: "Error generating token",
			body: `{"email":"ama@example.com","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "ama@example.com", "1234").Return(user, nil)
				service.EXPECT().GenerateToken("user-1").Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/users", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"ama@example.com","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ama@example.com", "1234").Return(user, nil)
				service.EXPECT().GenerateToken("user-1").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"ama@example.com","pin":"0000"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ama@example.com", "0000").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing email",
			body:          `{"pin":"1234"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "email: is required",
		},
		{
			name: "Error generating token",
			body: `{"email":"ama@example.com","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ama@example.com", "1234").Return(user, nil)
				service.EXPECT().GenerateToken("user-1").Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/users/signin", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.LoginResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "ama@example.com", resp.User.Email)
			assert.NotContains(t, rr.Body.String(), "hashedpin")
		})
	}
}

func TestListUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{*user}, nil)
	rr := httptest.NewRecorder()
	handler.ListUsers(rr, httptest.NewRequest("GET", "/api/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.NotContains(t, rr.Body.String(), "hashedpin")

	service.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("database error"))
	rr = httptest.NewRecorder()
	handler.ListUsers(rr, httptest.NewRequest("GET", "/api/users", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		email        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Found",
			email: "ama@example.com",
			prepareMock: func() {
				service.EXPECT().GetUserByEmail(gomock.Any(), "ama@example.com").Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Not found",
			email: "nobody@example.com",
			prepareMock: func() {
				service.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.NewNotFoundError("user", "nobody@example.com"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.email)
			req := httptest.NewRequest("GET", "/api/users/"+tt.email, nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.GetUser(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
