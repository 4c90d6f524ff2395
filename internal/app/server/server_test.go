package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"netpay/internal/auth"
	"netpay/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:               ":0",
		Environment:        "test",
		ExportPath:         "employee.csv",
		LogLevel:           "info",
		MaxBodyBytes:       4096,
		RateLimitPerMinute: 100,
		MetricsEnabled:     true,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestHealthAndMetrics(t *testing.T) {
	app, err := New(testConfig(), quietLogger())
	require.NoError(t, err)
	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	resp, err = ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "netpay_http_requests_total")
}

func TestCalculateThroughRouter(t *testing.T) {
	app, err := New(testConfig(), quietLogger())
	require.NoError(t, err)
	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	resp, err := ts.Client().Post(ts.URL+"/api/v1/payroll/calculate", "application/json",
		bytes.NewBufferString(`{"name":"NoName","baseSalary":"3000.00","daysWorked":30}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIRequiresTokenWhenSecretSet(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "secret"
	app, err := New(cfg, quietLogger())
	require.NoError(t, err)
	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	body := `{"name":"NoName","baseSalary":"3000.00","daysWorked":30}`
	resp, err := ts.Client().Post(ts.URL+"/api/v1/payroll/calculate", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := auth.GenerateToken("secret", "clerk-1", "payroll", time.Hour)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/payroll/calculate", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 10
	_, err := New(cfg, quietLogger())
	require.Error(t, err)

	cfg = testConfig()
	cfg.DataEncryptionKey = "short"
	_, err = New(cfg, quietLogger())
	require.Error(t, err)
}
