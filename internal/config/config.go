package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/barbeariapremium/booking-service/internal/domain"
)

// Config is the full service configuration, loaded once at startup.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Shop     ShopConfig     `toml:"shop"`
	Schedule ScheduleConfig `toml:"schedule"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig configures logging output.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig locates the appointment snapshot file.
type StorageConfig struct {
	File string `toml:"file"`
}

// ShopConfig carries the shop identity used in confirmation messages.
type ShopConfig struct {
	Name     string `toml:"name"`
	Address  string `toml:"address"`
	Phone    string `toml:"phone"`
	WhatsApp string `toml:"whatsapp"` // digits only, with country code
}

// ScheduleConfig defines working hours and slot granularity.
// Weekdays follow time.Weekday numbering (Sunday = 0).
type ScheduleConfig struct {
	OpenHour            int `toml:"open_hour"`
	CloseHour           int `toml:"close_hour"`
	SlotIntervalMinutes int `toml:"slot_interval_minutes"`
	ClosureWeekday      int `toml:"closure_weekday"`
	ShortDayWeekday     int `toml:"short_day_weekday"`
	ShortDayCloseHour   int `toml:"short_day_close_hour"`
	BookingWindowDays   int `toml:"booking_window_days"`
}

// CatalogConfig holds the static staff and service definitions.
type CatalogConfig struct {
	Staff    map[string]StaffEntry   `toml:"staff"`
	Services map[string]ServiceEntry `toml:"services"`
}

// StaffEntry is one staff member in the config file.
type StaffEntry struct {
	Name  string `toml:"name"`
	Phone string `toml:"phone"`
}

// ServiceEntry is one service in the config file.
type ServiceEntry struct {
	Name            string  `toml:"name"`
	Price           float64 `toml:"price"`
	DurationMinutes int     `toml:"duration_minutes"`
}

// Load reads and validates the TOML configuration at path.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

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
			ServiceName: "booking-service",
		},
		Storage: StorageConfig{
			File: "data/appointments.json",
		},
		Schedule: ScheduleConfig{
			OpenHour:            domain.DefaultOpenHour,
			CloseHour:           domain.DefaultCloseHour,
			SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
			ClosureWeekday:      int(time.Sunday),
			ShortDayWeekday:     int(time.Saturday),
			ShortDayCloseHour:   domain.DefaultShortDayCloseHour,
			BookingWindowDays:   domain.DefaultBookingWindowDays,
		},
	}
}

func (c *Config) validate() error {
	s := c.Schedule

	if s.OpenHour < 0 || s.OpenHour > 23 {
		return fmt.Errorf("config: open_hour %d out of range", s.OpenHour)
	}
	if s.CloseHour < 1 || s.CloseHour > 24 {
		return fmt.Errorf("config: close_hour %d out of range", s.CloseHour)
	}
	if s.OpenHour >= s.CloseHour {
		return fmt.Errorf("config: open_hour %d must be before close_hour %d", s.OpenHour, s.CloseHour)
	}
	if s.SlotIntervalMinutes <= 0 || s.SlotIntervalMinutes > 240 {
		return fmt.Errorf("config: slot_interval_minutes %d out of range", s.SlotIntervalMinutes)
	}
	if s.ClosureWeekday < 0 || s.ClosureWeekday > 6 {
		return fmt.Errorf("config: closure_weekday %d out of range", s.ClosureWeekday)
	}
	if s.ShortDayWeekday < 0 || s.ShortDayWeekday > 6 {
		return fmt.Errorf("config: short_day_weekday %d out of range", s.ShortDayWeekday)
	}
	if s.ShortDayCloseHour <= s.OpenHour || s.ShortDayCloseHour > s.CloseHour {
		return fmt.Errorf("config: short_day_close_hour %d must be after open_hour and not after close_hour", s.ShortDayCloseHour)
	}
	if s.BookingWindowDays <= 0 {
		return fmt.Errorf("config: booking_window_days must be positive, got %d", s.BookingWindowDays)
	}

	if len(c.Catalog.Staff) == 0 {
		return fmt.Errorf("config: at least one staff member is required")
	}
	if len(c.Catalog.Services) == 0 {
		return fmt.Errorf("config: at least one service is required")
	}
	for id, entry := range c.Catalog.Staff {
		if entry.Name == "" {
			return fmt.Errorf("config: staff %q has no name", id)
		}
	}
	for id, entry := range c.Catalog.Services {
		if entry.Name == "" {
			return fmt.Errorf("config: service %q has no name", id)
		}
		if entry.DurationMinutes <= 0 {
			return fmt.Errorf("config: service %q has non-positive duration", id)
		}
	}

	if c.Storage.File == "" {
		return fmt.Errorf("config: storage file path is required")
	}

	return nil
}

// BuildCatalog converts the catalog section into the domain registry.
func (c *Config) BuildCatalog() *domain.Catalog {
	staff := make(map[string]domain.Staff, len(c.Catalog.Staff))
	for id, entry := range c.Catalog.Staff {
		staff[id] = domain.Staff{Name: entry.Name, Phone: entry.Phone}
	}

	services := make(map[string]domain.Service, len(c.Catalog.Services))
	for id, entry := range c.Catalog.Services {
		services[id] = domain.Service{
			Name:            entry.Name,
			Price:           entry.Price,
			DurationMinutes: entry.DurationMinutes,
		}
	}

	return domain.NewCatalog(staff, services)
}
