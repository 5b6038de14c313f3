package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowIndex 渲染首页，列表与图表由前端脚本通过 API 拉取
func (a *API) ShowIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "PulseLog",
	})
}
