package service

import (
	"testing"
	"time"

	"github.com/pulselog/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Activity{}, &db.Wellness{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestActivityServiceCreateAssignsIDAndTimestamp(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewActivityService(db.DB)
	before := time.Now()

	activity, err := svc.Create(ActivityInput{
		Type:      "Run",
		Duration:  30,
		Intensity: "high",
		Notes:     "morning",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if activity.ID == 0 {
		t.Fatal("expected activity to have ID")
	}
	if activity.Timestamp.Before(before) {
		t.Fatalf("expected timestamp >= submit time, got %v", activity.Timestamp)
	}

	activities, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}

	got := activities[0]
	if got.ID != activity.ID || got.Type != "Run" || got.Duration != 30 || got.Intensity != "high" || got.Notes != "morning" {
		t.Fatalf("unexpected first activity: %+v", got)
	}
}

func TestActivityServiceListNewestFirst(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewActivityService(db.DB)
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)

	// 时钟可注入：逐条递增写入
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return ts }
		if _, err := svc.Create(ActivityInput{Type: "Walk", Duration: 20 + i, Intensity: "low"}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	activities, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}

	for i := 1; i < len(activities); i++ {
		if activities[i].Timestamp.After(activities[i-1].Timestamp) {
			t.Fatalf("expected descending order, got %v before %v", activities[i-1].Timestamp, activities[i].Timestamp)
		}
	}
	if activities[0].Duration != 22 {
		t.Fatalf("expected newest activity first, got duration %d", activities[0].Duration)
	}
}

func TestActivityServiceAppendOnlyAllowsDuplicates(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewActivityService(db.DB)
	input := ActivityInput{Type: "Swim", Duration: 45, Intensity: "medium"}

	if _, err := svc.Create(input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	// 运动记录没有去重键，重复提交追加一条新记录
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}

	activities, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].ID == activities[1].ID {
		t.Fatal("expected distinct IDs for duplicate submissions")
	}
}

func TestActivityServiceStoresValuesAsGiven(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewActivityService(db.DB)

	// 存储层不做约束：非法取值原样入库
	activity, err := svc.Create(ActivityInput{Type: "", Duration: -5, Intensity: "extreme"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if activity.Duration != -5 {
		t.Fatalf("expected duration stored as given, got %d", activity.Duration)
	}
}
