package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpserver "boost_site/internal/adapters/http_server"
)

func TestMutationLimitAllowsBurstThen429(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := httpserver.MutationLimit(1, 3)(okHandler)

	req := func() *http.Request {
		r := httptest.NewRequest("POST", "/api/reviews", nil)
		r.RemoteAddr = "203.0.113.9:1234"
		return r
	}

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req())
		if rr.Code != http.StatusCreated {
			t.Fatalf("request %d within burst: status %d", i, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req())
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past burst, got %d", rr.Code)
	}
}

func TestMutationLimitIsPerIP(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httpserver.MutationLimit(1, 1)(okHandler)

	first := httptest.NewRequest("POST", "/api/reviews", nil)
	first.RemoteAddr = "203.0.113.1:1"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("first ip: %d", rr.Code)
	}

	// exhaust first ip
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, first)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("first ip should be limited, got %d", rr.Code)
	}

	// a different ip still has its own bucket
	second := httptest.NewRequest("POST", "/api/reviews", nil)
	second.RemoteAddr = "203.0.113.2:1"
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, second)
	if rr.Code != http.StatusOK {
		t.Fatalf("second ip should pass, got %d", rr.Code)
	}
}
