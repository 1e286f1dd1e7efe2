package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUserIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{name: "from header", header: "alice", want: "alice"},
		{name: "from query", query: "bob", want: "bob"},
		{name: "header wins over query", header: "alice", query: "bob", want: "alice"},
		{name: "default when absent", want: DefaultUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = getUserIDFromContext(r.Context())
			})

			url := "/api/cart"
			if tt.query != "" {
				url += "?userId=" + tt.query
			}
			request := httptest.NewRequest("GET", url, nil)
			if tt.header != "" {
				request.Header.Set("X-User-ID", tt.header)
			}

			UserIDMiddleware(next).ServeHTTP(httptest.NewRecorder(), request)

			if got != tt.want {
				t.Errorf("Expected user id %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/health", nil)
	RequestIDMiddleware(next).ServeHTTP(recorder, request)

	if recorder.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest("GET", "/health", nil)
	request.Header.Set("X-Request-ID", "req-42")
	RequestIDMiddleware(next).ServeHTTP(recorder, request)

	if got := recorder.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("Expected X-Request-ID req-42, got %q", got)
	}
}
