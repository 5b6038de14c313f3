package handler

import (
	"github.com/pulselog/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	activities *service.ActivityService
	wellness   *service.WellnessService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:         gdb,
		activities: service.NewActivityService(gdb),
		wellness:   service.NewWellnessService(gdb),
	}
}
