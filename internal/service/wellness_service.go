package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/pulselog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 趋势图固定展示最近 7 个有记录的日期
const recentWellnessDays = 7

// WellnessService 负责每日健康指标的 upsert 与趋势查询
// Date 是唯一键：同一天重复提交只覆盖指标字段，不产生新行

type WellnessService struct {
	db  *gorm.DB
	now func() time.Time
}

// WellnessInput 定义提交健康指标时的输入对象
// Date 为零值时取服务端时钟的"今天"
type WellnessInput struct {
	Date        time.Time
	EnergyLevel int
	SleepHours  float64
	MoodScore   int
}

// NewWellnessService 构造 WellnessService
func NewWellnessService(gdb *gorm.DB) *WellnessService {
	return &WellnessService{db: gdb, now: time.Now}
}

// Upsert 处理按日期幂等的写入：存在则覆盖三个指标字段，否则插入新行
// 通过唯一索引加 ON CONFLICT 保证原子性，避免并发提交产生同日两行
func (s *WellnessService) Upsert(input WellnessInput) (*db.Wellness, error) {
	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	date = normalizeToDate(date)

	record := db.Wellness{
		Date:        date,
		EnergyLevel: input.EnergyLevel,
		SleepHours:  input.SleepHours,
		MoodScore:   input.MoodScore,
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"energy_level", "sleep_hours", "mood_score", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("upsert wellness: %w", err)
	}

	if err := s.db.Where("date = ?", date).First(&record).Error; err != nil {
		return nil, fmt.Errorf("reload wellness: %w", err)
	}

	return &record, nil
}

// ListRecent 返回最近 7 个有记录的日期，按日期升序排列
// 先按日期倒序取前 7 条再反转：图表的 x 轴需要从左到右递增
func (s *WellnessService) ListRecent() ([]db.Wellness, error) {
	var entries []db.Wellness
	if err := s.db.Order("date DESC").Limit(recentWellnessDays).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list wellness: %w", err)
	}

	slices.Reverse(entries)
	return entries, nil
}

func normalizeToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
