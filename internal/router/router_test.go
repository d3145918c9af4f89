package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "upiscan/docs"
	"upiscan/internal/clipboard/noop"
	"upiscan/internal/config"
	"upiscan/internal/decoder/zxing"
	noopdialer "upiscan/internal/dialer/noop"
	"upiscan/internal/handler"
	"upiscan/internal/router"
	"upiscan/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Scan: config.ScanConfig{
			USSDCode:         "*99*1*3#",
			DialEnabled:      true,
			ClipboardLabel:   "UPI Id",
			MaxImageSizeMB:   1,
			BatchConcurrency: 2,
			BatchMaxItems:    10,
		},
	}
	svc := service.NewScanService(zxing.NewQRDecoder(false), noop.NewNoopClipboard(), noopdialer.NewNoopDialer(), &cfg.Scan)
	return router.Setup(cfg, handler.NewScanHandler(svc), handler.NewHealthHandler(svc))
}

func TestRouter_Health(t *testing.T) {
	r := setupRouter()

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestRouter_ScanEndToEnd(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/scans",
		strings.NewReader(`{"payload":"upi://pay?pn=Corner%20Store&pa=corner%40okaxis"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "corner@okaxis", data["payee_address"])
	assert.Equal(t, "url", data["kind"])
	assert.Equal(t, "tel:*99*1*3%23", data["dial_uri"])
	assert.Equal(t, true, data["copied"])
}

func TestRouter_ScanInvalid(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/scans", strings.NewReader(`{"payload":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid QR")
}

func TestRouter_BatchTooLarge(t *testing.T) {
	r := setupRouter()

	payloads := make([]string, 11)
	for i := range payloads {
		payloads[i] = "x"
	}
	body, _ := json.Marshal(map[string][]string{"payloads": payloads})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/scans/batch", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/nope", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_APIRoutesDocumented(t *testing.T) {
	r := setupRouter()

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	documented := 0
	for _, route := range r.Routes() {
		path, ok := strings.CutPrefix(route.Path, doc.BasePath)
		if !ok {
			continue
		}
		documented++
		methods, ok := doc.Paths[path]
		require.True(t, ok, "%s is not documented", route.Path)
		assert.Contains(t, methods, strings.ToLower(route.Method), route.Path)
	}
	assert.Equal(t, len(doc.Paths), documented)
}
