package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Location LocationConfig
	APIKeys  map[string]string // service name to API key for internal routes
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// LocationConfig contains the tunables of the sharing and proximity engine
type LocationConfig struct {
	DefaultMemberRadiusM float64
	SuggestionThresholdM float64
	HereDistanceM        float64
	SuggestionCooldown   time.Duration
	SamplerMaxStaleness  time.Duration
	PositionGrace        time.Duration
	SweepInterval        time.Duration
	RetentionWindow      time.Duration
	TentCacheTTL         time.Duration
	MaxDurationMinutes   int
	AllowedDurations     []int // empty means any positive duration up to MaxDurationMinutes
	StoreShards          int
	FestivalTimezone     string // IANA zone that decides the festival's calendar day
}

// DefaultLocationConfig returns the engine defaults
func DefaultLocationConfig() LocationConfig {
	return LocationConfig{
		DefaultMemberRadiusM: 1000,
		SuggestionThresholdM: 50,
		HereDistanceM:        10,
		SuggestionCooldown:   5 * time.Minute,
		SamplerMaxStaleness:  30 * time.Second,
		PositionGrace:        60 * time.Second,
		SweepInterval:        15 * time.Second,
		RetentionWindow:      10 * time.Minute,
		TentCacheTTL:         5 * time.Minute,
		MaxDurationMinutes:   24 * 60,
		StoreShards:          32,
		FestivalTimezone:     "Europe/Berlin",
	}
}

// FestivalLocation resolves FestivalTimezone, falling back to UTC for an empty or unknown zone
func (c LocationConfig) FestivalLocation() *time.Location {
	if c.FestivalTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.FestivalTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
