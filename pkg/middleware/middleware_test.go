package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Usa o cabeçalho recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants", nil)
		req.Header.Set(log.CorrelationIDHeader, "trace-42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", seen)
		assert.Equal(t, "trace-42", rec.Header().Get(log.CorrelationIDHeader))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("Gera um novo ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/restaurants", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(log.CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/trends", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { handler.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Cors([]string{"http://localhost:3000"})(next)

	tests := []struct {
		name         string
		method       string
		origin       string
		expectedCode int
		allowed      bool
	}{
		{name: "Origem permitida", method: http.MethodGet, origin: "http://localhost:3000", expectedCode: http.StatusOK, allowed: true},
		{name: "Origem desconhecida", method: http.MethodGet, origin: "http://evil.example", expectedCode: http.StatusOK},
		{name: "Preflight", method: http.MethodOptions, origin: "http://localhost:3000", expectedCode: http.StatusNoContent, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/restaurants", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
