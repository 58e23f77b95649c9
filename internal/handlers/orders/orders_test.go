package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/internal/ledger"
	"github.com/kboat10/babs10/pkg/auth"
	"github.com/kboat10/babs10/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const userID = "user-1"

var (
	order = &domain.Order{
		ID:        "o-1",
		OrderDate: "2025-08-21",
		Items: []domain.Item{
			{Desc: "Amazon 1", Qty: "1", Price: "60.94"},
			{Desc: "Amazon 2", Qty: "1", Price: "50.44"},
		},
		SavedAt: time.Date(2025, 8, 21, 2, 23, 11, 0, time.UTC),
	}
	customer = &domain.Customer{
		ID:         "c-1",
		Name:       "Kwasi",
		MoneyGiven: decimal.NewFromInt(700),
		TotalSpent: decimal.RequireFromString("111.38"),
		Orders:     []domain.Order{*order},
	}
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithUserID(ctx, userID))
}

const orderBody = `{"orderDate":"2025-08-21","items":[` +
	`{"desc":"Amazon 1","qty":"1","price":"60.94"},` +
	`{"desc":"Amazon 2","qty":"1","price":"50.44"}]}`

func TestAddOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Order saved",
			body: orderBody,
			prepareMock: func() {
				service.EXPECT().SaveOrder(gomock.Any(), userID, "c-1", gomock.Any(), "").DoAndReturn(
					func(_ context.Context, _, _ string, input ledger.OrderInput, _ string) (*domain.Order, *domain.Customer, error) {
						assert.Equal(t, "2025-08-21", input.OrderDate)
						require.Len(t, input.Items, 2)
						assert.Equal(t, "50.44", input.Items[1].Price)
						return order, customer, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid price",
			body: `{"items":[{"desc":"Shoes","price":"abc"}]}`,
			prepareMock: func() {
				service.EXPECT().SaveOrder(gomock.Any(), userID, "c-1", gomock.Any(), "").
					Return(nil, nil, domain.NewValidationError("price", `"abc" is not a number`))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: `validation error: price "abc" is not a number`,
		},
		{
			name: "Unknown customer",
			body: orderBody,
			prepareMock: func() {
				service.EXPECT().SaveOrder(gomock.Any(), userID, "c-1", gomock.Any(), "").
					Return(nil, nil, domain.NewNotFoundError("customer", "c-1"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: `customer "c-1" not found`,
		},
		{
			name:          "Invalid request body",
			body:          `[`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.AddOrder(rr, newRequest("POST", "/api/customers/c-1/orders", tt.body, map[string]string{"customerID": "c-1"}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.SaveOrderResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "o-1", resp.Order.ID)
			assert.Equal(t, "111.38", resp.Customer.TotalSpent.String())
			assert.Equal(t, "$588.62", resp.Customer.BalanceText)
		})
	}
}

func TestUpdateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"customerID": "c-1", "orderID": "o-1"}

	service.EXPECT().SaveOrder(gomock.Any(), userID, "c-1", gomock.Any(), "o-1").Return(order, customer, nil)
	rr := httptest.NewRecorder()
	handler.UpdateOrder(rr, newRequest("PUT", "/api/customers/c-1/orders/o-1", orderBody, params))
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().SaveOrder(gomock.Any(), userID, "c-1", gomock.Any(), "o-1").
		Return(nil, nil, domain.NewNotFoundError("order", "o-1"))
	rr = httptest.NewRecorder()
	handler.UpdateOrder(rr, newRequest("PUT", "/api/customers/c-1/orders/o-1", orderBody, params))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"customerID": "c-1"}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Orders deleted",
			body: `{"orderIds":["o-1","o-9"]}`,
			prepareMock: func() {
				service.EXPECT().DeleteOrders(gomock.Any(), userID, "c-1", []string{"o-1", "o-9"}).
					Return(&domain.Customer{ID: "c-1", MoneyGiven: decimal.NewFromInt(700)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing orderIds",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Storage failure",
			body: `{"orderIds":["o-1"]}`,
			prepareMock: func() {
				service.EXPECT().DeleteOrders(gomock.Any(), userID, "c-1", []string{"o-1"}).
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.DeleteOrders(rr, newRequest("DELETE", "/api/customers/c-1/orders", tt.body, params))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteAllOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DeleteAllOrders(gomock.Any(), userID, "c-1").
		Return(&domain.Customer{ID: "c-1", MoneyGiven: decimal.NewFromInt(700)}, nil)

	rr := httptest.NewRecorder()
	handler.DeleteAllOrders(rr, newRequest("DELETE", "/api/customers/c-1/orders/all", "", map[string]string{"customerID": "c-1"}))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CustomerResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Empty(t, resp.Orders)
	assert.Equal(t, "$700.00", resp.BalanceText)
}
