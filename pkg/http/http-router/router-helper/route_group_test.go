package router_helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	router := httprouter.New()
	called := ""
	handle := func(name string) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			called = name + ps.ByName("id")
		}
	}

	api := NewRouteGroup(router, "/api")
	api.POST("/aggregate", handle("aggregate"))
	api.Group("/aggregations").GET("/:id", handle("get-"))
	NewRouteGroup(router, "").POST("/aggregate", handle("root"))

	tests := []struct {
		method, target, want string
	}{
		{http.MethodPost, "/api/aggregate", "aggregate"},
		{http.MethodGet, "/api/aggregations/42", "get-42"},
		{http.MethodPost, "/aggregate", "root"},
	}
	for _, tt := range tests {
		called = ""
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, tt.want, called, tt.target)
	}
}
