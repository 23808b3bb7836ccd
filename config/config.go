package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type DbConfigStruct struct {
	Host           string
	User           string
	Password       string
	DBName         string
	Port           string
	MaxConnections int
}

type Config struct {
	ListenAddr string
	LogLevel   string
	Backend    string
	Db         DbConfigStruct
}

var DbConfig = DbConfigStruct{
	Host:           "localhost",
	User:           "docker",
	Password:       "docker",
	DBName:         "docker",
	Port:           "5432",
	MaxConnections: 1000,
}

// Load reads the environment, falling back to the defaults above.
func Load() Config {
	db := DbConfig
	db.Host = env("DB_HOST", db.Host)
	db.User = env("DB_USER", db.User)
	db.Password = env("DB_PASSWORD", db.Password)
	db.DBName = env("DB_NAME", db.DBName)
	db.Port = env("DB_PORT", db.Port)
	if n, err := strconv.Atoi(env("DB_MAX_CONNECTIONS", "")); err == nil && n > 0 {
		db.MaxConnections = n
	}

	backend := strings.ToLower(env("STORE_BACKEND", BackendPostgres))
	if backend != BackendMemory {
		backend = BackendPostgres
	}
	return Config{
		ListenAddr: env("LISTEN_ADDR", ":5000"),
		LogLevel:   env("LOG_LEVEL", "info"),
		Backend:    backend,
		Db:         db,
	}
}

func (c DbConfigStruct) ConnString() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable port=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port)
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
