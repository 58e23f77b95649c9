package backups

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/dto"
	"github.com/kboat10/babs10/pkg/auth"
	"github.com/kboat10/babs10/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const (
	userID = "user-1"
	file   = "ledger_20250824T125034.000000000Z.json"
)

func NewMock(t *testing.T) (*BackupHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(auth.WithUserID(req.Context(), userID))
}

func TestListBackups(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedFiles []string
	}{
		{
			name: "Backups listed",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), userID).Return([]string{file}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedFiles: []string{file},
		},
		{
			name: "Nothing backed up yet",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), userID).Return([]string{}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedFiles: []string{},
		},
		{
			name: "Disk failure",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("permission denied"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.ListBackups(rr, newRequest("GET", "/api/backups", ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.BackupListResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedFiles, resp.Files)
			}
		})
	}
}

func TestRestoreBackup(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Ledger restored",
			body: `{"file":"` + file + `"}`,
			prepareMock: func() {
				service.EXPECT().Restore(gomock.Any(), userID, file).Return(2, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing file",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "file: is required",
		},
		{
			name:          "Invalid request body",
			body:          `{"file":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unknown backup",
			body: `{"file":"` + file + `"}`,
			prepareMock: func() {
				service.EXPECT().Restore(gomock.Any(), userID, file).Return(0, domain.NewNotFoundError("backup", file))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: `backup "` + file + `" not found`,
		},
		{
			name: "Corrupt backup",
			body: `{"file":"` + file + `"}`,
			prepareMock: func() {
				service.EXPECT().Restore(gomock.Any(), userID, file).
					Return(0, domain.NewValidationError("customer", "id is required"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "validation error: customer id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.RestoreBackup(rr, newRequest("POST", "/api/backups/restore", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.RestoreResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Ledger restored", resp.Message)
			assert.Equal(t, 2, resp.Customers)
		})
	}
}
