package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"vet-clinic/internal/domain/refs"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Log        LogConfig        `mapstructure:"log"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
	References ReferencesConfig `mapstructure:"references"`
	API        APIConfig        `mapstructure:"api"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StorageConfig struct {
	// Driver vacío => se infiere desde DSN (sin DSN => memory).
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	// 0 desactiva el límite.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// ReferencesConfig define cómo se validan las referencias débiles entre entidades.
type ReferencesConfig struct {
	AnimalOwner       refs.Policy `mapstructure:"animal_owner"`
	AppointmentAnimal refs.Policy `mapstructure:"appointment_animal"`
}

type APIConfig struct {
	// LegacyNotFound responde 200 + null en vez de 404 para GET/PUT de ids inexistentes.
	LegacyNotFound bool `mapstructure:"legacy_not_found"`
}

// SetDefaults registra todos los keys conocidos; AutomaticEnv solo ve keys registrados.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("storage.driver", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.max_open_conns", 10)
	v.SetDefault("storage.max_idle_conns", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "vet-clinic")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("ratelimit.requests_per_minute", 0)

	v.SetDefault("references.animal_owner", string(refs.Drop))
	v.SetDefault("references.appointment_animal", string(refs.Unchecked))

	v.SetDefault("api.legacy_not_found", false)
}

// NewViper arma la cadena defaults -> archivo (opcional) -> env VETCLINIC_*.
// Si cfgFile viene explícito y no existe, es error; si se busca por paths, es opcional.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("vetclinic")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vetclinic")
	}

	v.SetEnvPrefix("VETCLINIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Compat con el despliegue anterior (PORT / DB_DSN).
	_ = v.BindEnv("server.port", "VETCLINIC_SERVER_PORT", "PORT")
	_ = v.BindEnv("storage.dsn", "VETCLINIC_STORAGE_DSN", "DB_DSN")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	c.Storage.Driver = inferDriver(c.Storage.Driver, c.Storage.DSN)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	// Validate ya aceptó ambos valores; se guardan en forma canónica.
	c.References.AnimalOwner, _ = refs.ParsePolicy(string(c.References.AnimalOwner))
	c.References.AppointmentAnimal, _ = refs.ParsePolicy(string(c.References.AppointmentAnimal))
	return c, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("%w: storage.dsn required for driver %q", ErrInvalidConfig, c.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port out of range: %d", ErrInvalidConfig, c.Server.Port)
	}

	if _, err := refs.ParsePolicy(string(c.References.AnimalOwner)); err != nil {
		return fmt.Errorf("%w: references.animal_owner: %v", ErrInvalidConfig, err)
	}
	if _, err := refs.ParsePolicy(string(c.References.AppointmentAnimal)); err != nil {
		return fmt.Errorf("%w: references.appointment_animal: %v", ErrInvalidConfig, err)
	}
	return nil
}

func inferDriver(driver, dsn string) string {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver != "" {
		if driver == "postgresql" || driver == "pgx" {
			return DriverPostgres
		}
		return driver
	}

	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return DriverMemory
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}
