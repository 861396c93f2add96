package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	// init resolves TIMEZONE, so the zone database has to be linked here.
	_ "time/tzdata"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type config struct {
	Production       bool          `env:"PRODUCTION" envDefault:"false"`
	Port             string        `env:"PORT" envDefault:"80"`
	Timezone         string        `env:"TIMEZONE" envDefault:"Asia/Jakarta"`
	Storage          string        `env:"STORAGE" envDefault:"file"`
	DataFile         string        `env:"DATA_FILE" envDefault:"data/events.json"`
	RedisUrl         string        `env:"REDIS_URL" envDefault:"redis:6379"`
	RedisKey         string        `env:"REDIS_KEY" envDefault:"yearly_flow_events"`
	PostgresUrl      string        `env:"POSTGRES_URL" envDefault:""`
	HolidaysDir      string        `env:"HOLIDAYS_DIR" envDefault:""`
	BackupCron       string        `env:"BACKUP_CRON" envDefault:""`
	BackupDir        string        `env:"BACKUP_DIR" envDefault:"data/backups"`
	EditUser         string        `env:"EDIT_USER" envDefault:""`
	EditPasswordHash string        `env:"EDIT_PASSWORD_HASH" envDefault:""`
	MaxImportSize    int64         `env:"MAX_IMPORT_SIZE" envDefault:"1048576"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var conf config
var location *time.Location

func init() {
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("failed to read .env: %v", err))
	}

	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		panic(fmt.Sprintf("failed to load timezone %q: %v", conf.Timezone, err))
	}
	location = loc
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

// Location is the wall-clock zone used for "today" and for encoding dates.
func Location() *time.Location {
	return location
}

func Storage() string {
	return conf.Storage
}

func DataFile() string {
	return conf.DataFile
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func RedisKey() string {
	return conf.RedisKey
}

func HolidaysDir() string {
	return conf.HolidaysDir
}

func BackupCron() string {
	return conf.BackupCron
}

func BackupDir() string {
	return conf.BackupDir
}

func EditUser() string {
	return conf.EditUser
}

func EditPasswordHash() string {
	return conf.EditPasswordHash
}

func MaxImportSize() int64 {
	return conf.MaxImportSize
}

func ShutdownTimeout() time.Duration {
	return conf.ShutdownTimeout
}
