package service

import (
	"fmt"
	"time"

	"github.com/pulselog/internal/db"
	"gorm.io/gorm"
)

// ActivityService 负责运动记录的写入与查询
// 记录只增不删不改，列表始终按时间戳倒序返回

type ActivityService struct {
	db  *gorm.DB
	now func() time.Time
}

// ActivityInput 定义提交运动记录时可填写的字段
type ActivityInput struct {
	Type      string
	Duration  int
	Intensity string
	Notes     string
}

// NewActivityService 构造 ActivityService
func NewActivityService(gdb *gorm.DB) *ActivityService {
	return &ActivityService{db: gdb, now: time.Now}
}

// Create 写入一条运动记录，由服务端分配 ID 与时间戳
// 字段取值不做校验，调用方传什么存什么
func (s *ActivityService) Create(input ActivityInput) (*db.Activity, error) {
	activity := db.Activity{
		Type:      input.Type,
		Duration:  input.Duration,
		Intensity: input.Intensity,
		Notes:     input.Notes,
		Timestamp: s.now(),
	}

	if err := s.db.Create(&activity).Error; err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	return &activity, nil
}

// List 返回全部运动记录，最新在前
// 时间戳相同的记录再按 ID 倒序，保证新记录始终排在旧记录之前
func (s *ActivityService) List() ([]db.Activity, error) {
	var activities []db.Activity
	if err := s.db.Order("timestamp DESC, id DESC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
