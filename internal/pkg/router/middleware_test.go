package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func tagMiddleware(calls *[]string, tag string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain(t *testing.T) {
	t.Run("FirstMiddlewareIsOutermost", func(t *testing.T) {
		// Arrange
		var calls []string
		h := Chain(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, "handler")
			}),
			tagMiddleware(&calls, "first"),
			tagMiddleware(&calls, "second"),
			tagMiddleware(&calls, "third"),
		)

		// Act
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		want := []string{"first", "second", "third", "handler"}
		if len(calls) != len(want) {
			t.Fatalf("expected %d calls, got %v", len(want), calls)
		}
		for i := range want {
			if calls[i] != want[i] {
				t.Fatalf("expected call order %v, got %v", want, calls)
			}
		}
	})

	t.Run("NoMiddlewares", func(t *testing.T) {
		called := false
		h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if !called {
			t.Fatalf("handler should be invoked unchanged")
		}
	})
}
