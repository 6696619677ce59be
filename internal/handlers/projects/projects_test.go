package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/pkg/auth"
)

const actor = "0x742d35cc6634c0532925a3b844bc9e7595f1beb5"

func NewMock(t *testing.T) (*ProjectsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	service.EXPECT().Decimals().Return(int32(18)).AnyTimes()
	return New(service), service
}

func request(method, body, id string) *http.Request {
	r := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	ctx := context.WithValue(r.Context(), auth.AddressKey, actor)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(s *MockService)
		expectedCode int
		check        func(t *testing.T, body dto.DashboardResponseDTO)
	}{
		{
			name: "Ledger data",
			prepareMock: func(s *MockService) {
				s.EXPECT().Dashboard(gomock.Any()).Return(&domain.Dashboard{
					Projects: []domain.Project{
						{ID: 0, Name: "Clinic", AllocatedAmount: eth(50), SpentAmount: eth(10), IsActive: true},
						{ID: 1, AllocatedAmount: eth(5), SpentAmount: new(big.Int)},
					},
					TotalAllocated: eth(55), TotalSpent: eth(10), TotalRemaining: eth(45), ActiveCount: 1, ChainID: 31337,
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body dto.DashboardResponseDTO) {
				require.Len(t, body.Projects, 2)
				assert.Equal(t, "40", body.Projects[0].Remaining)
				assert.Equal(t, "Project #1", body.Projects[1].Name)
				assert.Equal(t, "45", body.TotalRemaining)
				assert.False(t, body.Demo)
			},
		},
		{
			name: "Ledger unavailable",
			prepareMock: func(s *MockService) {
				s.EXPECT().Dashboard(gomock.Any()).Return(nil, domain.ErrLedgerUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetDashboard(w, request(http.MethodGet, "", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				var body dto.DashboardResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				tt.check(t, body)
			}
		})
	}
}

func TestGetProject(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Found",
			id:   "2",
			prepareMock: func(s *MockService) {
				s.EXPECT().Project(gomock.Any(), uint64(2)).Return(&domain.ProjectDetails{
					Project: domain.Project{ID: 2, AllocatedAmount: eth(1), SpentAmount: eth(0)},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing",
			id:   "9",
			prepareMock: func(s *MockService) {
				s.EXPECT().Project(gomock.Any(), uint64(9)).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad id",
			id:           "-1",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetProject(w, request(http.MethodGet, "", tt.id))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateProject(t *testing.T) {
	projectID := uint64(3)
	tests := []struct {
		name           string
		body           string
		prepareMock    func(s *MockService)
		expectedCode   int
		expectedStatus string
	}{
		{
			name: "Committed",
			body: `{"name":"Bridge","description":"River crossing","allocated_amount":"50"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateProject(gomock.Any(), actor, domain.CreateProjectInput{Name: "Bridge", Description: "River crossing", AllocatedAmount: "50"}).
					Return(&domain.WriteResult{OperationID: "op-1", TxHash: common.HexToHash("0xaa"), ProjectID: &projectID, Status: domain.OpCommitted}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "committed",
		},
		{
			name: "Partial is still a success",
			body: `{"name":"Bridge","allocated_amount":"50"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateProject(gomock.Any(), actor, gomock.Any()).
					Return(&domain.WriteResult{OperationID: "op-1", Status: domain.OpPartial, Warning: "details were not saved"}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "partial",
		},
		{
			name: "Rejected in wallet",
			body: `{"name":"Bridge","allocated_amount":"50"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateProject(gomock.Any(), actor, gomock.Any()).Return(nil, domain.ErrUserRejected)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Wrong network",
			body: `{"name":"Bridge","allocated_amount":"50"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateProject(gomock.Any(), actor, gomock.Any()).Return(nil, domain.ErrWrongNetwork)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid body",
			body:         `{"name":`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.CreateProject(w, request(http.MethodPost, tt.body, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedStatus != "" {
				var body dto.WriteResultDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedStatus, body.Status)
			}
		})
	}
}

func TestSpendFunds(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Committed",
			body: `{"amount":"10","category":"materials","description":"Steel"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SpendFunds(gomock.Any(), actor, domain.SpendInput{ProjectID: 1, Amount: "10", Category: "materials", Description: "Steel"}).
					Return(&domain.WriteResult{Status: domain.OpCommitted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Overspend",
			body: `{"amount":"100","category":"materials"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SpendFunds(gomock.Any(), actor, gomock.Any()).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Revert",
			body: `{"amount":"1","category":"materials"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SpendFunds(gomock.Any(), actor, gomock.Any()).Return(nil, &domain.RevertError{Reason: "Not authorized to spend"})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "No wallet",
			body: `{"amount":"1","category":"materials"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().SpendFunds(gomock.Any(), actor, gomock.Any()).Return(nil, domain.ErrProviderMissing)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.SpendFunds(w, request(http.MethodPost, tt.body, "1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetStatus(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetProjectStatus(gomock.Any(), uint64(0), domain.StatusPaused).Return(&domain.WriteResult{Status: domain.OpCommitted}, nil)
	w := httptest.NewRecorder()
	handler.SetStatus(w, request(http.MethodPut, `{"status":"paused"}`, "0"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.SetStatus(w, request(http.MethodPut, `{"status":"archived"}`, "0"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGrants(t *testing.T) {
	handler, service := NewMock(t)
	const other = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

	service.EXPECT().AddApprover(gomock.Any(), uint64(4), other).Return(&domain.WriteResult{Status: domain.OpCommitted}, nil)
	w := httptest.NewRecorder()
	handler.AddApprover(w, request(http.MethodPost, `{"address":"`+other+`"}`, "4"))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().AddAdmin(gomock.Any(), other).Return(nil, &domain.RevertError{Reason: "Not admin"})
	w = httptest.NewRecorder()
	handler.AddAdmin(w, request(http.MethodPost, `{"address":"`+other+`"}`, ""))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	service.EXPECT().AddGovernmentOfficial(gomock.Any(), other).Return(nil, errors.New("boom"))
	w = httptest.NewRecorder()
	handler.AddOfficial(w, request(http.MethodPost, `{"address":"`+other+`"}`, ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
