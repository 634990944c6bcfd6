package router

import (
	"huffman_coding_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	CoderHandler *handler.CoderHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		runs := v1.Group("/runs")
		{
			runs.POST("", d.CoderHandler.CreateRun)
			runs.POST("/batch", d.CoderHandler.CreateBatch)
			runs.GET("", d.CoderHandler.List)
			runs.GET("/:id", d.CoderHandler.GetByID)
			runs.GET("/:id/tree.dot", d.CoderHandler.TreeDOT)
			runs.POST("/:id/decode", d.CoderHandler.Decode)
		}
	}
}
