package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"estimaciones_obra/internal/adapter/http/middleware"
	"estimaciones_obra/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func actorOf(role entities.Role) entities.Actor {
	return entities.Actor{UserID: "u-" + string(role), UserName: "User " + string(role), Role: role}
}

// newRouter mounts h on method/path behind a fixed identity. A zero actor mounts it without
// identity.
func newRouter(actor entities.Actor, method, path string, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor.Role != "" {
		r.Use(middleware.WithActor(actor))
	}
	r.Handle(method, path, h)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
