package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочее расписание выездов
type ScheduleConfig struct {
	OpenTime            string `toml:"open_time"`  // "09:00"
	CloseTime           string `toml:"close_time"` // "18:00"
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	AdvanceBookingDays  int    `toml:"advance_booking_days"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с безопасными значениями по умолчанию
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "ome-booking-service",
		},
		Schedule: ScheduleConfig{
			OpenTime:            domain.DefaultOpenTime,
			CloseTime:           domain.DefaultCloseTime,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			AdvanceBookingDays:  domain.DefaultAdvanceBookingDays,
		},
	}
}

// ToWorkSchedule конвертирует валидированную конфигурацию в domain модель
func (c ScheduleConfig) ToWorkSchedule() domain.WorkSchedule {
	return domain.WorkSchedule{
		Open:                types.TimeString(c.OpenTime),
		Close:               types.TimeString(c.CloseTime),
		SlotDurationMinutes: c.SlotDurationMinutes,
		AdvanceBookingDays:  c.AdvanceBookingDays,
	}
}

func (c *Config) validate() error {
	open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
	if err != nil {
		return fmt.Errorf("config: invalid schedule.open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("config: invalid schedule.close_time: %w", err)
	}
	if !open.IsBefore(closeTime) {
		return fmt.Errorf("config: schedule.open_time %s must be before schedule.close_time %s",
			c.Schedule.OpenTime, c.Schedule.CloseTime)
	}

	if c.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: schedule.slot_duration_minutes must be in [%d, %d]",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if c.Schedule.AdvanceBookingDays < 0 {
		return fmt.Errorf("config: schedule.advance_booking_days must not be negative")
	}

	return nil
}
