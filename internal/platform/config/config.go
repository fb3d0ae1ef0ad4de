package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret solo sirve para desarrollo local. main avisa si se usa.
const DevJWTSecret = "pet-parade-dev-secret"

type Config struct {
	App    string
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	Pets   PetsConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	DSN         string // vacío => repos in-memory
	AutoMigrate bool
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Required exige Bearer válido en rutas de escritura y en /users/login.
	Required bool
}

type PetsConfig struct {
	RecentLimit int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load lee .env (si existe) y luego env vars vía viper.
func Load() (Config, error) {
	// .env es opcional; en prod las variables vienen del entorno.
	_ = godotenv.Load()
	v := newViper()
	v.AutomaticEnv()
	return FromViper(v)
}

// newViper solo carga defaults; Load agrega AutomaticEnv.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("APP_NAME", "pet-parade")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HTTP_READ_TIMEOUT", "5s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("PETS_RECENT_LIMIT", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	return v
}

// FromViper arma Config desde una instancia de viper ya poblada.
// Se expone para poder testear sin tocar el entorno del proceso.
func FromViper(v *viper.Viper) (Config, error) {
	var errs []error

	cfg := Config{
		App: strings.TrimSpace(v.GetString("APP_NAME")),
		Server: ServerConfig{
			Port:            strings.TrimSpace(v.GetString("PORT")),
			ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
		},
		DB: DBConfig{
			DSN:         strings.TrimSpace(v.GetString("DB_DSN")),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("JWT_TTL"),
			Required:  v.GetBool("AUTH_REQUIRED"),
		},
		Pets: PetsConfig{
			RecentLimit: v.GetInt("PETS_RECENT_LIMIT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Server.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if cfg.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be positive, got %s", cfg.Auth.TokenTTL))
	}
	if cfg.Pets.RecentLimit <= 0 {
		errs = append(errs, fmt.Errorf("PETS_RECENT_LIMIT must be positive, got %d", cfg.Pets.RecentLimit))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

// UsesDevSecret indica si JWT_SECRET quedó en el default de desarrollo.
func (c Config) UsesDevSecret() bool {
	return c.Auth.JWTSecret == DevJWTSecret
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
