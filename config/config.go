package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Seed   SeedConfig
	Upload UploadConfig
}

type AppConfig struct {
	Port    string
	Env     string
	LogPath string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SeedConfig drives the legacy data-migration command.
type SeedConfig struct {
	DumpPath              string
	MigrationsPath        string
	AdminEmail            string
	AdminPassword         string
	DoctorDefaultPassword string
}

type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
}

// IsProduction reports whether the process runs under the production
// designation; destructive operator commands require an explicit override.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Environment variables alone are a valid configuration source.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	setDefaults()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:    viper.GetString("APP_PORT"),
			Env:     viper.GetString("APP_ENV"),
			LogPath: viper.GetString("APP_LOG_PATH"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Seed: SeedConfig{
			DumpPath:              viper.GetString("SEED_DUMP_PATH"),
			MigrationsPath:        viper.GetString("SEED_MIGRATIONS_PATH"),
			AdminEmail:            viper.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword:         viper.GetString("SEED_ADMIN_PASSWORD"),
			DoctorDefaultPassword: viper.GetString("SEED_DOCTOR_DEFAULT_PASSWORD"),
		},
		Upload: UploadConfig{
			Dir:          viper.GetString("UPLOAD_DIR"),
			MaxSizeBytes: viper.GetInt64("UPLOAD_MAX_SIZE_BYTES"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_LOG_PATH", "storage/logs/app.log")
	viper.SetDefault("SEED_DUMP_PATH", "database/legacy_dump.sql")
	viper.SetDefault("SEED_MIGRATIONS_PATH", "migrations")
	viper.SetDefault("SEED_ADMIN_EMAIL", "admin@hellodoctors.local")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin@123")
	viper.SetDefault("SEED_DOCTOR_DEFAULT_PASSWORD", "doctor@123")
	viper.SetDefault("UPLOAD_DIR", "storage/uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE_BYTES", 2<<20)
}
