package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"upiscan/internal/domain"
	"upiscan/internal/handler"
	"upiscan/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockScanService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", http.NoBody)

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewHealthHandler(mockSvc)
	mockSvc.On("Extract", mock.Anything, mock.Anything).
		Return(&domain.Extraction{Kind: domain.PayloadKindURL, PayeeAddress: "probe@upi"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

	h.Readiness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestHealthHandler_Readiness_Unavailable(t *testing.T) {
	mockSvc := new(mocks.MockScanService)
	h := handler.NewHealthHandler(mockSvc)
	mockSvc.On("Extract", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidQR)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

	h.Readiness(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}
