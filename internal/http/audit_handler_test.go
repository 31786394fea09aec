package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/mocks"
	"github.com/guttosm/production-gateway/internal/service"
)

func TestAuditHandler_Query(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockAuditService)
		expectedStatus int
	}{
		{
			name:  "filters are passed through",
			query: "?action=delete_product&subject=7&start_time=2026-01-01T00:00:00Z&limit=20&skip=5",
			setupMock: func(m *mocks.MockAuditService) {
				m.On("Query", mock.Anything, mock.MatchedBy(func(q model.AuditQuery) bool {
					return q.Action == model.ActionDeleteProduct && q.Subject == "7" &&
						q.StartTime != nil && q.StartTime.Equal(start) && q.EndTime == nil &&
						q.Limit == 20 && q.Skip == 5
				})).Return([]model.AuditEntry{{Action: model.ActionDeleteProduct, Outcome: model.OutcomeSuccess}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "limit above maximum",
			query:          "?limit=1000",
			setupMock:      func(*mocks.MockAuditService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed time",
			query:          "?start_time=yesterday",
			setupMock:      func(*mocks.MockAuditService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "end before start",
			query:          "?start_time=2026-01-02T00:00:00Z&end_time=2026-01-01T00:00:00Z",
			setupMock:      func(*mocks.MockAuditService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "audit disabled",
			setupMock: func(m *mocks.MockAuditService) {
				m.On("Query", mock.Anything, mock.Anything).Return(nil, service.ErrAuditDisabled)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "store circuit open",
			setupMock: func(m *mocks.MockAuditService) {
				m.On("Query", mock.Anything, mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "store failure",
			setupMock: func(m *mocks.MockAuditService) {
				m.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := new(mocks.MockAuditService)
			tt.setupMock(audit)
			router := NewRouter(Handlers{Audit: NewAuditHandler(audit)}, RouterConfig{})

			w := performRequest(router, http.MethodGet, "/api/audit"+tt.query, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			audit.AssertExpectations(t)
		})
	}
}
