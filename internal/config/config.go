package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleBoard/pkg/types"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочее окно сетки и размер слота
// Часы салона задаются здесь, а не константами в коде
type ScheduleConfig struct {
	DayStart     string `toml:"day_start"`
	DayEnd       string `toml:"day_end"`
	SlotMinutes  int    `toml:"slot_minutes"`
	DefaultTitle string `toml:"default_title"`
}

// DSN строка подключения к postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StartMinute начало рабочего окна в минутах от полуночи
func (s ScheduleConfig) StartMinute() (int, error) {
	return types.TimeString(s.DayStart).Minutes()
}

// EndMinute конец рабочего окна (не включительно) в минутах от полуночи
// "24:00" и "00:00" трактуются как конец суток
func (s ScheduleConfig) EndMinute() (int, error) {
	if s.DayEnd == "24:00" {
		return 24 * 60, nil
	}
	m, err := types.TimeString(s.DayEnd).Minutes()
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 24 * 60, nil
	}
	return m, nil
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает TOML, подставляет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-schedule-board"
	}

	if c.Schedule.DayStart == "" {
		c.Schedule.DayStart = "08:00"
	}
	if c.Schedule.DayEnd == "" {
		c.Schedule.DayEnd = "20:00"
	}
	if c.Schedule.SlotMinutes == 0 {
		c.Schedule.SlotMinutes = 30
	}
	if c.Schedule.DefaultTitle == "" {
		c.Schedule.DefaultTitle = "Appointment"
	}
}

// Validate проверяет, что окно сетки корректно
// Неверное окно - ошибка конфигурации, сервис не должен стартовать
func (c *Config) Validate() error {
	start, err := c.Schedule.StartMinute()
	if err != nil {
		return fmt.Errorf("%w: schedule.day_start: %v", ErrInvalidConfig, err)
	}
	end, err := c.Schedule.EndMinute()
	if err != nil {
		return fmt.Errorf("%w: schedule.day_end: %v", ErrInvalidConfig, err)
	}
	if start >= end {
		return fmt.Errorf("%w: schedule.day_start %s must be before day_end %s",
			ErrInvalidConfig, c.Schedule.DayStart, c.Schedule.DayEnd)
	}
	if c.Schedule.SlotMinutes <= 0 {
		return fmt.Errorf("%w: schedule.slot_minutes must be positive", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	return nil
}
