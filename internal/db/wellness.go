package db

import (
	"time"

	"gorm.io/gorm"
)

// Wellness 记录单日健康指标
// Date 上有唯一索引：同一天至多一行，重复提交时覆盖三个指标字段（upsert）
// EnergyLevel/MoodScore 取值约定为 1-10，SleepHours 为非负小时数
type Wellness struct {
	gorm.Model
	EnergyLevel int
	SleepHours  float64
	MoodScore   int
	Date        time.Time `gorm:"uniqueIndex"`
}
