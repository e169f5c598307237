package api

import (
	"log"
	stdhttp "net/http"

	intconfig "resale/internal/config"
	h "resale/internal/http/handlers"
	"resale/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)
		api.GET("/currencies", h.Currencies)

		// Browse
		browse := api.Group("/browse")
		browse.GET("/defaults", h.DefaultFilters)
		browse.POST("/filter-string", h.BuildFilterString)
		browse.GET("/price-options", h.PriceOptions)
		browse.GET("/sorts", h.Sorts)
		browse.GET("/search", h.Search)

		// Products
		products := api.Group("/products")
		products.GET("/:id/high-low", h.ProductHighLow)

		// Seller (bearer token)
		me := api.Group("/me", middleware.RequireSeller([]byte(env.JWTSecret)))
		bulk := me.Group("/bulk-list")
		bulk.POST("/preview", h.PreviewBulkList)
		bulk.PUT("", h.ConfirmBulkList)
		bulk.GET("/edits", h.ListBulkEdits)
		bulk.GET("/edits/:id/summary", h.GetBulkEditSummaryPDF)
	}

	h.SetRouter(r)
	return r
}
