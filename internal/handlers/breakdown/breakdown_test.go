package breakdown

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/ledger"
	"github.com/kboat10/babs10/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const userID = "user-1"

func NewMock(t *testing.T) (*BreakdownHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body, customerID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	if customerID != "" {
		rctx.URLParams.Add("customerID", customerID)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithUserID(ctx, userID))
}

func TestCurrentOrderBreakdownHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name                string
		body                string
		prepareMock         func()
		expectedCode        int
		expectedInsufficient bool
	}{
		{
			name: "Customer cannot cover the order",
			body: `{"customerId":"c-1","format":"simple","order":{"items":[{"desc":"Shoes","price":"30"}]}}`,
			prepareMock: func() {
				service.EXPECT().CurrentOrderBreakdown(gomock.Any(), userID, "c-1", gomock.Any(), "simple").DoAndReturn(
					func(_ context.Context, _, _ string, input ledger.OrderInput, _ string) (*domain.Breakdown, error) {
						require.Len(t, input.Items, 1)
						assert.Equal(t, "Shoes", input.Items[0].Desc)
						return &domain.Breakdown{Format: "simple", Text: "Order Total: $30.00", InsufficientBalance: true}, nil
					})
			},
			expectedCode:        http.StatusOK,
			expectedInsufficient: true,
		},
		{
			name: "Without customer",
			body: `{"format":"detailed","order":{"items":[]}}`,
			prepareMock: func() {
				service.EXPECT().CurrentOrderBreakdown(gomock.Any(), userID, "", gomock.Any(), "detailed").
					Return(&domain.Breakdown{Format: "detailed", Text: "Order Total: $0.00"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing format",
			body:         `{"order":{}}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown format",
			body: `{"format":"pdf","order":{}}`,
			prepareMock: func() {
				service.EXPECT().CurrentOrderBreakdown(gomock.Any(), userID, "", gomock.Any(), "pdf").
					Return(nil, domain.NewValidationError("format", `"pdf" is not simple or detailed`))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.CurrentOrderBreakdown(rr, newRequest("POST", "/api/breakdown", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.BreakdownResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedInsufficient, resp.InsufficientBalance)
				assert.Contains(t, resp.Text, "Order Total")
			}
		})
	}
}

func TestCustomerBreakdownHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Format defaults to simple",
			target: "/api/customers/c-1/breakdown",
			prepareMock: func() {
				service.EXPECT().CustomerBreakdown(gomock.Any(), userID, "c-1", "simple").
					Return(&domain.Breakdown{Format: "simple", Text: "GRAND TOTAL: $111.38"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Detailed",
			target: "/api/customers/c-1/breakdown?format=detailed",
			prepareMock: func() {
				service.EXPECT().CustomerBreakdown(gomock.Any(), userID, "c-1", "detailed").
					Return(&domain.Breakdown{Format: "detailed", Text: "GRAND TOTAL: $111.38"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "No orders",
			target: "/api/customers/c-1/breakdown",
			prepareMock: func() {
				service.EXPECT().CustomerBreakdown(gomock.Any(), userID, "c-1", "simple").
					Return(nil, domain.NewValidationError("orders", "no orders found for this customer"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "Unknown customer",
			target: "/api/customers/c-1/breakdown",
			prepareMock: func() {
				service.EXPECT().CustomerBreakdown(gomock.Any(), userID, "c-1", "simple").
					Return(nil, domain.NewNotFoundError("customer", "c-1"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.CustomerBreakdown(rr, newRequest("GET", tt.target, "", "c-1"))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
