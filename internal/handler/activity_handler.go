package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulselog/internal/db"
	"github.com/pulselog/internal/service"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04"
)

type activityPayload struct {
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
}

// ListActivities 返回全部运动记录 JSON，最新在前
func (a *API) ListActivities(c *gin.Context) {
	activities, err := a.activities.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load activities")
		return
	}

	items := make([]gin.H, 0, len(activities))
	for _, activity := range activities {
		items = append(items, activityToPayload(activity))
	}

	c.JSON(http.StatusOK, items)
}

// CreateActivity 写入一条运动记录并返回包含分配 ID 的完整内容
func (a *API) CreateActivity(c *gin.Context) {
	var payload activityPayload
	if !bindJSON(c, &payload, "invalid activity payload") {
		return
	}

	activity, err := a.activities.Create(service.ActivityInput{
		Type:      payload.Type,
		Duration:  payload.Duration,
		Intensity: payload.Intensity,
		Notes:     payload.Notes,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save activity")
		return
	}

	c.JSON(http.StatusCreated, activityToPayload(*activity))
}

func activityToPayload(activity db.Activity) gin.H {
	return gin.H{
		"id":        activity.ID,
		"type":      activity.Type,
		"duration":  activity.Duration,
		"intensity": activity.Intensity,
		"notes":     activity.Notes,
		"timestamp": activity.Timestamp.Format(timestampFormat),
	}
}
