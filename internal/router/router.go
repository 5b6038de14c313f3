package router

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pulselog/internal/handler"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	// 工作目录可能不带前端资源（例如测试里），有模板才加载
	if pages, err := filepath.Glob("web/template/*.html"); err == nil && len(pages) > 0 {
		r.LoadHTMLGlob("web/template/*.html")
	}

	// 静态文件服务
	r.Static("/static", "./web/static")

	api := handler.NewAPI(gdb)

	r.GET("/", api.ShowIndex)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/activities", api.ListActivities)
		apiGroup.POST("/activities", api.CreateActivity)
		apiGroup.GET("/wellness", api.ListWellness)
		apiGroup.POST("/wellness", api.UpsertWellness)
	}

	return r
}

// requestID 为每个响应附加 X-Request-ID，便于日志关联
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
