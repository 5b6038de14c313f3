package db

import (
	"time"

	"gorm.io/gorm"
)

// Activity 记录一次运动打卡
// Duration 单位为分钟；Intensity 为 low/medium/high 一类的自由文本，存储层不做约束
// Timestamp 由服务端在写入时赋值，之后不再变更；记录只增不删不改
type Activity struct {
	gorm.Model
	Type      string
	Duration  int
	Intensity string
	Notes     string
	Timestamp time.Time `gorm:"index"`
}
