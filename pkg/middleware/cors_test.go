package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var frontendOrigins = []string{"http://localhost:3000", "https://localhost:3000"}

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		requestOrigin string
		method        string
		preflight     bool
		wantStatus    int
		wantHeader    string
	}{
		{
			name:          "http frontend origin gets header",
			requestOrigin: "http://localhost:3000",
			method:        http.MethodGet,
			wantStatus:    http.StatusOK,
			wantHeader:    "http://localhost:3000",
		},
		{
			name:          "https frontend origin gets header",
			requestOrigin: "https://localhost:3000",
			method:        http.MethodDelete,
			wantStatus:    http.StatusOK,
			wantHeader:    "https://localhost:3000",
		},
		{
			name:          "other port is not allowed",
			requestOrigin: "http://localhost:3001",
			method:        http.MethodGet,
			wantStatus:    http.StatusOK,
			wantHeader:    "",
		},
		{
			name:          "disallowed origin blocked on preflight",
			requestOrigin: "https://evil.com",
			method:        http.MethodOptions,
			preflight:     true,
			wantStatus:    http.StatusForbidden,
			wantHeader:    "",
		},
		{
			name:          "preflight returns no content",
			requestOrigin: "http://localhost:3000",
			method:        http.MethodOptions,
			preflight:     true,
			wantStatus:    http.StatusNoContent,
			wantHeader:    "http://localhost:3000",
		},
		{
			name:          "case insensitive origin match",
			requestOrigin: "HTTP://LOCALHOST:3000",
			method:        http.MethodGet,
			wantStatus:    http.StatusOK,
			wantHeader:    "HTTP://LOCALHOST:3000",
		},
		{
			name:          "no origin header skips CORS",
			requestOrigin: "",
			method:        http.MethodGet,
			wantStatus:    http.StatusOK,
			wantHeader:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(CORSConfig{AllowedOrigins: frontendOrigins})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/users", nil)
			if tt.requestOrigin != "" {
				req.Header.Set("Origin", tt.requestOrigin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			got := rec.Header().Get("Access-Control-Allow-Origin")
			if got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestCORSPreflightAllowsAnyMethodAndHeader(t *testing.T) {
	handler := CORS(CORSConfig{AllowedOrigins: frontendOrigins, MaxAge: 600})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/users/1", nil)
	req.Header.Set("Origin", "https://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header, Content-Type")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "PATCH" {
		t.Errorf("Access-Control-Allow-Methods = %q, want PATCH", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "X-Custom-Header, Content-Type" {
		t.Errorf("Access-Control-Allow-Headers = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Errorf("Access-Control-Max-Age = %q, want 600", got)
	}
}

func TestCORSPlainOptionsPassesThrough(t *testing.T) {
	called := false
	handler := CORS(CORSConfig{AllowedOrigins: frontendOrigins})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("OPTIONS without Access-Control-Request-Method should reach the handler")
	}
}
