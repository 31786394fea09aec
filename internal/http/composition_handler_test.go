package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/mocks"
	"github.com/guttosm/production-gateway/internal/service"
)

func TestCompositionHandler(t *testing.T) {
	association := model.Record{"id": 11.0, "productId": 7.0, "rawMaterialId": 3.0, "requiredQuantity": 2.5}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMock      func(*mocks.MockCompositionService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/product-materials",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("List", mock.Anything).Return([]model.Record{association}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var records []model.Record
				decodeData(t, w, &records)
				assert.Equal(t, []model.Record{association}, records)
			},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/api/product-materials/11",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("Get", mock.Anything, model.ID("11")).Return(association, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create passes the body as sent",
			method: http.MethodPost,
			path:   "/api/product-materials",
			body:   `{"product":{"id":7},"rawMaterial":{"id":3},"quantity":"2,5"}`,
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("Create", mock.Anything, model.Record{
					"product":     map[string]any{"id": 7.0},
					"rawMaterial": map[string]any{"id": 3.0},
					"quantity":    "2,5",
				}).Return(association, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "create with empty body",
			method: http.MethodPost,
			path:   "/api/product-materials",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("Create", mock.Anything, model.Record(nil)).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "create with a JSON array",
			method:         http.MethodPost,
			path:           "/api/product-materials",
			body:           `[1,2]`,
			setupMock:      func(*mocks.MockCompositionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/api/product-materials/11",
			body:   `{"requiredQuantity":4}`,
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("Update", mock.Anything, model.ID("11"), model.Record{"requiredQuantity": 4.0}).Return(association, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/api/product-materials/11",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("Delete", mock.Anything, model.ID("11")).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "product composition",
			method: http.MethodGet,
			path:   "/api/products/7/materials",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("ListByProduct", mock.Anything, model.ID("7")).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"data":[]`)
			},
		},
		{
			name:   "legacy create with product id and payload",
			method: http.MethodPost,
			path:   "/api/products/7/materials",
			body:   `{"rawMaterialId":3,"quantity":2}`,
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("CreateLegacy", mock.Anything, []any{
					model.ID("7"),
					model.Record{"rawMaterialId": 3.0, "quantity": 2.0},
				}).Return(association, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "legacy positional create",
			method: http.MethodPost,
			path:   "/api/products/7/materials/3",
			body:   `{"quantity":"2,5"}`,
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("CreateLegacy", mock.Anything, []any{model.ID("7"), model.ID("3"), "2,5"}).Return(association, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "legacy positional create without body",
			method: http.MethodPost,
			path:   "/api/products/7/materials/3",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("CreateLegacy", mock.Anything, []any{model.ID("7"), model.ID("3"), nil}).Return(association, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "legacy update",
			method: http.MethodPut,
			path:   "/api/products/7/materials/11",
			body:   `{"quantity":5}`,
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("UpdateLegacy", mock.Anything, []any{
					model.ID("7"), model.ID("11"), model.Record{"quantity": 5.0},
				}).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "legacy update without body still addresses the association",
			method: http.MethodPut,
			path:   "/api/products/7/materials/11",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("UpdateLegacy", mock.Anything, []any{
					model.ID("7"), model.ID("11"), model.Record{},
				}).Return(association, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "legacy delete",
			method: http.MethodDelete,
			path:   "/api/products/7/materials/11",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("DeleteLegacy", mock.Anything, []any{model.ID("7"), model.ID("11")}).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "missing association id",
			method: http.MethodDelete,
			path:   "/api/products/7/materials/%20",
			setupMock: func(m *mocks.MockCompositionService) {
				m.On("DeleteLegacy", mock.Anything, mock.Anything).Return(service.ErrMissingAssociationID)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "Product-material association id is required", decodeError(t, w).Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compositions := new(mocks.MockCompositionService)
			tt.setupMock(compositions)
			router := NewRouter(Handlers{Compositions: NewCompositionHandler(compositions)}, RouterConfig{})

			w := performRequest(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			compositions.AssertExpectations(t)
		})
	}
}
