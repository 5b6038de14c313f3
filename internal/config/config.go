package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr   string
	Port         string
	DatabasePath string
	GinMode      string
}

// ClientConfig 汇总客户端运行所需的配置。
// ServerURL 非空时走远端 API，否则直接读写本地存储。
type ClientConfig struct {
	ServerURL   string
	LocalDBPath string
}

// Load 从环境变量读取服务端配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "pulselog.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	return AppConfig{
		ListenAddr:   listenAddr,
		Port:         port,
		DatabasePath: databasePath,
		GinMode:      ginMode,
	}
}

// LoadClient 从环境变量读取客户端配置。
// 后端的选择在这里一次性定下：PULSELOG_SERVER 存在即视为有服务端可用。
func LoadClient() ClientConfig {
	serverURL := strings.TrimSpace(os.Getenv("PULSELOG_SERVER"))

	dbPath := strings.TrimSpace(os.Getenv("PULSELOG_DB_PATH"))
	if dbPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dbPath = filepath.Join(home, ".pulselog", "pulselog.db")
		} else {
			dbPath = "pulselog.db"
		}
	}

	return ClientConfig{
		ServerURL:   serverURL,
		LocalDBPath: dbPath,
	}
}
