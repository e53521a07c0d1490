package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cash-track/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Identity, error) {
	if token != "good" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return auth.Identity{UserID: "u1", Email: "u1@example.com"}, nil
}

func newRouter(log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(log))
	r.GET("/me", Auth(stubVerifier{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentIdentity(c))
	})
	return r
}

func TestAuth(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"lower case scheme", "bearer good", http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"no scheme", "good", http.StatusUnauthorized},
		{"basic", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
	}
	r := newRouter(zerolog.Nop())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", w.Code, tc.status, w.Body)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if tc.status == http.StatusOK {
				if body["uid"] != "u1" || body["email"] != "u1@example.com" {
					t.Errorf("identity = %v", body)
				}
				return
			}
			if body["error"] != "Authentication required" || body["message"] == "" {
				t.Errorf("error body = %v", body)
			}
		})
	}
}

func TestAuth_ErrorMessage(t *testing.T) {
	r := newRouter(zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body["message"], auth.ErrInvalidToken.Error()) {
		t.Errorf("message = %q", body["message"])
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(zerolog.Nop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("generated request id = %q, want a uuid", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/me?x=1", nil)
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set(RequestIDHeader, "req-9")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"level":      "info",
		"method":     "GET",
		"path":       "/me",
		"query":      "x=1",
		"status":     float64(200),
		"request_id": "req-9",
		"user_id":    "u1",
		"message":    "http_request",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("log[%s] = %v, want %v", k, entry[k], v)
		}
	}
}

func TestLogger_ClientErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(zerolog.New(&buf))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "warn" || entry["status"] != float64(401) {
		t.Errorf("log = %v", entry)
	}
}
