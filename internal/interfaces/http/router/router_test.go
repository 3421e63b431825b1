package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/openpharm/backend/internal/interfaces/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type registrarFunc func(rg *gin.RouterGroup)

func (f registrarFunc) RegisterRoutes(rg *gin.RouterGroup) { f(rg) }

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "/api", r.basePath)
	assert.Empty(t, r.registrars)
}

func TestRouterWithBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/internal"))

	assert.Equal(t, "/internal", r.basePath)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {}))
	r.Register(registrarFunc(func(rg *gin.RouterGroup) {}))

	assert.Len(t, r.registrars, 2)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
	}))
	r.Setup()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterSetupMountsUnderBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/internal"))

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/status", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
	}))
	r.Setup()

	req := httptest.NewRequest(http.MethodGet, "/internal/status", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaleRoutesAcceptBareAndPrefixedPaths(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Register(NewSaleRoutes(handler.NewSaleHandler(nil)))
	r.Setup()

	// Unauthenticated requests stop at the owner guard with 401, which is
	// enough to prove the route dispatched instead of 404ing.
	id := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/sale/" + id},
		{http.MethodDelete, "/api/sale/" + id},
		{http.MethodPut, "/api/sale/update/" + id},
		{http.MethodDelete, "/api/sale/delete/" + id},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.method+" "+route.path)
	}
}

func TestRouterMultipleRegistrars(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		group := rg.Group("/sale")
		group.GET("/all", func(c *gin.Context) { c.Status(http.StatusOK) })
	}))
	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		group := rg.Group("/medicine")
		group.GET("/all", func(c *gin.Context) { c.Status(http.StatusOK) })
	}))
	r.Setup()

	for _, path := range []string{"/api/sale/all", "/api/medicine/all"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
