package handlers

import (
	"net/http"
	"sync"

	intconfig "resale/internal/config"
	"resale/internal/search"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	d := current()
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"currencies": d.Currencies != nil,
		"search":     d.Searcher != nil,
	})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.PingDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database OK"})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

// Sorts lists the browse sorts the search endpoint accepts.
func Sorts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sorts": search.Sorts(), "default": search.DefaultSort})
}

// Currencies lists the supported currency codes.
func Currencies(c *gin.Context) {
	d := current()
	if d.Currencies == nil {
		respondError(c, http.StatusServiceUnavailable, "currencies_not_loaded", "currency table not loaded", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currencies": d.Currencies.Codes()})
}
