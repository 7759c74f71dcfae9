package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransferHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(mockRecorder *MockTransferRecorder)
		expectedStatusCode int
		expectedKey        string
		expectedValue      string
	}{
		{
			name:        "successful transfer",
			requestBody: `{"sender": 1, "receiver": 2, "sum": 50, "timestamp": 1268179200}`,
			setupMocks: func(mockRecorder *MockTransferRecorder) {
				mockRecorder.EXPECT().RecordTransfer(gomock.Any(), int64(1), int64(2), int64(50), int64(1268179200)).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
			expectedValue:      "1 sent 50$ to 2",
		},
		{
			name:        "numeric strings accepted",
			requestBody: `{"sender": "3", "receiver": "4", "sum": "0", "timestamp": "10"}`,
			setupMocks: func(mockRecorder *MockTransferRecorder) {
				mockRecorder.EXPECT().RecordTransfer(gomock.Any(), int64(3), int64(4), int64(0), int64(10)).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
			expectedValue:      "3 sent 0$ to 4",
		},
		{
			name:               "invalid json",
			requestBody:        "invalid-json",
			setupMocks:         func(mockRecorder *MockTransferRecorder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Invalid request body",
		},
		{
			name:               "body is not an object",
			requestBody:        `[1, 2, 3]`,
			setupMocks:         func(mockRecorder *MockTransferRecorder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Invalid request body",
		},
		{
			name:               "missing sender",
			requestBody:        `{"receiver": 2, "sum": 50, "timestamp": 1}`,
			setupMocks:         func(mockRecorder *MockTransferRecorder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Missing field 'sender'",
		},
		{
			name:               "null receiver",
			requestBody:        `{"sender": 1, "receiver": null, "sum": 50, "timestamp": 1}`,
			setupMocks:         func(mockRecorder *MockTransferRecorder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Missing field 'receiver'",
		},
		{
			name:               "negative sum",
			requestBody:        `{"sender": 1, "receiver": 2, "sum": -5, "timestamp": 1}`,
			setupMocks:         func(mockRecorder *MockTransferRecorder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Invalid data for field 'sum'",
		},
		{
			name:               "boolean timestamp",
			requestBody:        `{"sender": 1, "receiver": 2, "sum": 5, "timestamp": true}`,
			setupMocks:         func(mockRecorder *MockTransferRecorder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Invalid data for field 'timestamp'",
		},
		{
			name:        "rejected by service",
			requestBody: `{"sender": 1, "receiver": 2, "sum": 5, "timestamp": 1}`,
			setupMocks: func(mockRecorder *MockTransferRecorder) {
				mockRecorder.EXPECT().RecordTransfer(gomock.Any(), int64(1), int64(2), int64(5), int64(1)).Return(services.ErrInvalidTransfer)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
			expectedValue:      "Invalid transfer",
		},
		{
			name:        "store unavailable",
			requestBody: `{"sender": 1, "receiver": 2, "sum": 5, "timestamp": 1}`,
			setupMocks: func(mockRecorder *MockTransferRecorder) {
				mockRecorder.EXPECT().RecordTransfer(gomock.Any(), int64(1), int64(2), int64(5), int64(1)).Return(models.ErrStoreUnavailable)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
			expectedValue:      "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRecorder := NewMockTransferRecorder(ctrl)
			tt.setupMocks(mockRecorder)

			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(tt.requestBody))
			rr := httptest.NewRecorder()

			handler := NewCreateTransferHandler(mockRecorder)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedValue, resp[tt.expectedKey])
		})
	}
}
