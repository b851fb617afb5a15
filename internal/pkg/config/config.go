package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment, reading configPath first when running locally
func InitConfig(configPath string) *models.Config {
	viper.AutomaticEnv()

	if GetEnv("APP_ENV", "local") == "local" && configPath != "" {
		viper.SetConfigFile(configPath)
		viper.SetConfigType("env")
		if err := viper.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig()
}

func loadConfig() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "location-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9991)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "festshare")

	// Service API keys for internal routes
	configs.APIKeys = map[string]string{
		"checkin-service": GetEnv("CHECKIN_SERVICE_API_KEY", ""),
	}

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/location.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	// Location engine config
	def := models.DefaultLocationConfig()
	configs.Location.DefaultMemberRadiusM = GetEnvAsFloat("LOCATION_MEMBER_RADIUS_M", def.DefaultMemberRadiusM)
	configs.Location.SuggestionThresholdM = GetEnvAsFloat("LOCATION_SUGGESTION_THRESHOLD_M", def.SuggestionThresholdM)
	configs.Location.HereDistanceM = GetEnvAsFloat("LOCATION_HERE_DISTANCE_M", def.HereDistanceM)
	configs.Location.SuggestionCooldown = GetEnvAsDuration("LOCATION_SUGGESTION_COOLDOWN", def.SuggestionCooldown)
	configs.Location.SamplerMaxStaleness = GetEnvAsDuration("LOCATION_SAMPLER_MAX_STALENESS", def.SamplerMaxStaleness)
	configs.Location.PositionGrace = GetEnvAsDuration("LOCATION_POSITION_GRACE", def.PositionGrace)
	configs.Location.SweepInterval = GetEnvAsDuration("LOCATION_SWEEP_INTERVAL", def.SweepInterval)
	configs.Location.RetentionWindow = GetEnvAsDuration("LOCATION_RETENTION_WINDOW", def.RetentionWindow)
	configs.Location.TentCacheTTL = GetEnvAsDuration("LOCATION_TENT_CACHE_TTL", def.TentCacheTTL)
	configs.Location.MaxDurationMinutes = GetEnvAsInt("LOCATION_MAX_DURATION_MINUTES", def.MaxDurationMinutes)
	configs.Location.AllowedDurations = GetEnvAsIntSlice("LOCATION_ALLOWED_DURATIONS", def.AllowedDurations)
	configs.Location.StoreShards = GetEnvAsInt("LOCATION_STORE_SHARDS", def.StoreShards)
	configs.Location.FestivalTimezone = GetEnv("LOCATION_FESTIVAL_TIMEZONE", def.FestivalTimezone)

	return configs
}

// Helper functions to get configuration values with different types

func GetEnv(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("90s", "5m")
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsIntSlice parses a comma separated list of integers ("15,30,60")
func GetEnvAsIntSlice(key string, defaultValue []int) []int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			log.Printf("Warning: Invalid integer list for %s, using default: %v", key, defaultValue)
			return defaultValue
		}
		values = append(values, v)
	}

	return values
}
