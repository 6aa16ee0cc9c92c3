package config

import (
	"os"
	"strconv"

	"github.com/cafefausse/cafe-fausse/services"
)

// Config holds all runtime settings, loaded once from the environment.
type Config struct {
	DBDriver         string // "mysql" or "sqlite"
	DatabaseDSN      string
	Port             string
	TotalTables      int
	MenuPath         string
	CORSAllowOrigins string
	AdminUsername    string
	AdminPassword    string
}

func Load() *Config {
	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "cafefausse.db"),
		Port:             getEnv("PORT", "8080"),
		TotalTables:      getEnvInt("TOTAL_TABLES", services.DefaultTotalTables),
		MenuPath:         getEnv("MENU_PATH", "data/menu.json"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
