package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulselog/internal/db"
	"github.com/pulselog/internal/service"
)

type wellnessPayload struct {
	EnergyLevel int     `json:"energy_level"`
	SleepHours  float64 `json:"sleep_hours"`
	MoodScore   int     `json:"mood_score"`
}

// ListWellness 返回最近 7 天的健康指标，按日期升序供图表消费
func (a *API) ListWellness(c *gin.Context) {
	entries, err := a.wellness.ListRecent()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load wellness entries")
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, wellnessToPayload(entry))
	}

	c.JSON(http.StatusOK, items)
}

// UpsertWellness 以服务端时钟的"今天"为键覆盖或插入当日指标
// 日期不接受客户端指定，保证一天一行的约束锚定在同一个时钟上
func (a *API) UpsertWellness(c *gin.Context) {
	var payload wellnessPayload
	if !bindJSON(c, &payload, "invalid wellness payload") {
		return
	}

	if _, err := a.wellness.Upsert(service.WellnessInput{
		EnergyLevel: payload.EnergyLevel,
		SleepHours:  payload.SleepHours,
		MoodScore:   payload.MoodScore,
	}); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save wellness entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

func wellnessToPayload(entry db.Wellness) gin.H {
	return gin.H{
		"id":           entry.ID,
		"energy_level": entry.EnergyLevel,
		"sleep_hours":  entry.SleepHours,
		"mood_score":   entry.MoodScore,
		"date":         entry.Date.Format(dateFormat),
	}
}
