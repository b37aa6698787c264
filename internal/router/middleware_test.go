package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cerealshop/storefront/internal/config"
	"github.com/cerealshop/storefront/internal/constants"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("generated request id should not be empty")
	}
	if resp := strings.TrimSpace(generated); resp == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestSessionMiddlewareIssuesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SessionMiddleware(config.SessionConfig{MaxAgeSeconds: 3600}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": getSessionID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	issued := w.Header().Get(constants.SessionHeaderName)
	if issued == "" {
		t.Fatalf("issued session id should not be empty")
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] != issued {
		t.Fatalf("context session want %s got %s", issued, resp["session_id"])
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != constants.SessionCookieName || cookies[0].Value != issued {
		t.Fatalf("session cookie not issued: %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie should be http only")
	}
}

func TestSessionMiddlewareReusesIncomingSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SessionMiddleware(config.SessionConfig{}))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getSessionID(c))
	})

	cases := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "header", header: "sess-header", want: "sess-header"},
		{name: "cookie", cookie: "sess_cookie", want: "sess_cookie"},
		{name: "header wins", header: "sess-a", cookie: "sess-b", want: "sess-a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(constants.SessionHeaderName, tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tc.cookie})
			}
			r.ServeHTTP(w, req)
			if w.Body.String() != tc.want {
				t.Fatalf("session want %s got %s", tc.want, w.Body.String())
			}
		})
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.SessionHeaderName, "bad value;")
	r.ServeHTTP(w, req)
	if w.Body.String() == "bad value;" || w.Body.String() == "" {
		t.Fatalf("invalid session id should be replaced, got %q", w.Body.String())
	}
}

func TestIsValidSessionID(t *testing.T) {
	cases := map[string]bool{
		"":                        false,
		"abc-DEF_123":             true,
		"has space":               false,
		"semi;colon":              false,
		strings.Repeat("a", 255): true,
		strings.Repeat("a", 256): false,
	}
	for input, want := range cases {
		if got := isValidSessionID(input); got != want {
			t.Fatalf("isValidSessionID(%q) want %v got %v", input, want, got)
		}
	}
}
