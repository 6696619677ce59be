package operations

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/internal/reconcile"
)

func NewMock(t *testing.T) (*OperationsHandler, *MockService, *MockReconciler) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	reconciler := NewMockReconciler(ctrl)
	return New(service, reconciler), service, reconciler
}

func TestList(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(s *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Partial only",
			query: "?status=partial",
			prepareMock: func(s *MockService) {
				s.EXPECT().Operations(gomock.Any(), domain.OpPartial).Return([]domain.Operation{
					{ID: "op-1", Kind: domain.OpSpendFunds, Status: domain.OpPartial, Error: "timeout"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "All",
			prepareMock: func(s *MockService) {
				s.EXPECT().Operations(gomock.Any(), domain.OperationStatus("")).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Unknown status",
			query: "?status=stuck",
			prepareMock: func(s *MockService) {
				s.EXPECT().Operations(gomock.Any(), domain.OperationStatus("stuck")).Return(nil, domain.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.List(w, httptest.NewRequest(http.MethodGet, "/api/operations"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.OperationDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	handler, _, reconciler := NewMock(t)

	reconciler.EXPECT().Run(gomock.Any()).Return(&reconcile.Report{Replayed: 2, Failed: 1, Errors: []string{"replay op-3: timeout"}}, nil)
	w := httptest.NewRecorder()
	handler.Reconcile(w, httptest.NewRequest(http.MethodPost, "/api/operations/reconcile", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body dto.ReconcileResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 2, body.Replayed)
	assert.Equal(t, 1, body.Failed)

	reconciler.EXPECT().Run(gomock.Any()).Return(nil, domain.ErrStoreUnavailable)
	w = httptest.NewRecorder()
	handler.Reconcile(w, httptest.NewRequest(http.MethodPost, "/api/operations/reconcile", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	reconciler.EXPECT().Run(gomock.Any()).Return(nil, errors.New("disk I/O error"))
	w = httptest.NewRecorder()
	handler.Reconcile(w, httptest.NewRequest(http.MethodPost, "/api/operations/reconcile", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
