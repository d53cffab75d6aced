package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-pos/analytics-svc/internal/api/http"
	"overcooked-pos/analytics-svc/internal/domain"
	"overcooked-pos/analytics-svc/internal/mocks"
	"overcooked-pos/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serve(handler *httpapi.Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetTopProductsHandler(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantDate  string
		wantLimit int
		mockErr   error
		wantCode  int
	}{
		{name: "defaults", target: "/api/analytics/top-products", wantLimit: 10, wantCode: http.StatusOK},
		{name: "date and limit", target: "/api/analytics/top-products?date=2024-03-15&limit=3", wantDate: "2024-03-15", wantLimit: 3, wantCode: http.StatusOK},
		{name: "invalid date", target: "/api/analytics/top-products?date=bad", wantDate: "bad", wantLimit: 10, mockErr: service.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "redis failure", target: "/api/analytics/top-products", wantLimit: 10, mockErr: errors.New("connection refused"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockAnalytics := mocks.NewAnalyticsInterface(t)
			var data []domain.ProductStat
			if testCase.mockErr == nil {
				data = []domain.ProductStat{{Name: "Pizza", Quantity: 1, Revenue: decimal.NewFromInt(15)}}
			}
			mockAnalytics.On("TopProducts", mock.Anything, testCase.wantDate, testCase.wantLimit).
				Return(data, testCase.mockErr).Once()

			w := serve(httpapi.NewHandler(mockAnalytics), testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"name":"Pizza"`)
			}
		})
	}
}

func TestGetTopProductsHandler_BadLimit(t *testing.T) {
	w := serve(httpapi.NewHandler(mocks.NewAnalyticsInterface(t)), "/api/analytics/top-products?limit=ten")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBreakdownHandlers(t *testing.T) {
	mockAnalytics := mocks.NewAnalyticsInterface(t)
	handler := httpapi.NewHandler(mockAnalytics)

	mockAnalytics.On("Categories", mock.Anything, "2024-03-15").
		Return([]domain.CategoryStat{{Category: "Food", Quantity: 5, Revenue: decimal.NewFromInt(65)}}, nil).Once()
	mockAnalytics.On("Hours", mock.Anything, "").
		Return([]domain.HourStat{{Hour: 19, Orders: 2, Revenue: decimal.NewFromInt(57)}}, nil).Once()
	mockAnalytics.On("Summary", mock.Anything, "").
		Return(domain.DailySummary{Date: "2024-03-15", Orders: 3}, nil).Once()

	w := serve(handler, "/api/analytics/categories?date=2024-03-15")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"Food"`)

	w = serve(handler, "/api/analytics/hours")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hour":19`)

	w = serve(handler, "/api/analytics/summary")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orders":3`)
}

func TestHealthHandler(t *testing.T) {
	w := serve(httpapi.NewHandler(mocks.NewAnalyticsInterface(t)), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "analytics-svc")
}
