package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/HallBookingService/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Hall          HallConfig          `toml:"hall"`
	Schedule      ScheduleConfig      `toml:"schedule"`
	Invoice       InvoiceConfig       `toml:"invoice"`
	Notifications NotificationsConfig `toml:"notifications"`
	Seed          SeedConfig          `toml:"seed"`
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
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HallConfig данные зала для счетов и писем
type HallConfig struct {
	Name     string `toml:"name"`
	Address  string `toml:"address"`
	Phone    string `toml:"phone"`
	Email    string `toml:"email"`
	Capacity int    `toml:"capacity"`
}

// ScheduleConfig рабочий день зала, из которого строится каталог слотов
type ScheduleConfig struct {
	StartHour       int   `toml:"start_hour"`
	EndHour         int   `toml:"end_hour"`
	BlockHours      int   `toml:"block_hours"`
	StandardRate    int64 `toml:"standard_rate"`
	EveningRate     int64 `toml:"evening_rate"`
	EveningFromHour int   `toml:"evening_from_hour"`
}

// InvoiceConfig настройки счетов
type InvoiceConfig struct {
	TaxRate  float64 `toml:"tax_rate"`
	Currency string  `toml:"currency"`
}

// NotificationsConfig настройки доставки уведомлений
// Пустой MailerURL / AMQPURL отключает соответствующий канал
type NotificationsConfig struct {
	MailerURL     string `toml:"mailer_url"`
	MailerTimeout int    `toml:"mailer_timeout"`
	AMQPURL       string `toml:"amqp_url"`
	SMSExchange   string `toml:"sms_exchange"`
	SMSRoutingKey string `toml:"sms_routing_key"`
}

// SeedConfig начальные данные реестра
type SeedConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

// Load загружает конфигурацию из TOML файла
// После файла подгружается .env (если есть) и переменные окружения перекрывают значения из файла
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env опционален
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv перекрывает значения из файла переменными окружения
func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Logs.Level = v
	}
	if v, ok := lookupEnv("MAILER_URL"); ok {
		c.Notifications.MailerURL = v
	}
	if v, ok := lookupEnv("AMQP_URL"); ok {
		c.Notifications.AMQPURL = v
	}
	if v, ok := lookupEnv("SEED_FILE"); ok {
		c.Seed.File = v
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hall_booking_service"
	}

	// Если расписание не задано целиком, используем стандартное
	if c.Schedule == (ScheduleConfig{}) {
		c.Schedule = ScheduleConfig{
			StartHour:       domain.DefaultStartHour,
			EndHour:         domain.DefaultEndHour,
			BlockHours:      domain.DefaultBlockHours,
			StandardRate:    domain.DefaultStandardRate,
			EveningRate:     domain.DefaultEveningRate,
			EveningFromHour: domain.DefaultEveningFromHour,
		}
	}
	if c.Schedule.EveningFromHour == 0 {
		c.Schedule.EveningFromHour = domain.DefaultEveningFromHour
	}

	if c.Invoice.TaxRate == 0 {
		c.Invoice.TaxRate = domain.DefaultTaxRate
	}
	if c.Invoice.Currency == "" {
		c.Invoice.Currency = "LKR"
	}
	if c.Notifications.MailerTimeout == 0 {
		c.Notifications.MailerTimeout = 10
	}
	if c.Notifications.SMSExchange == "" {
		c.Notifications.SMSExchange = "notifications"
	}
	if c.Notifications.SMSRoutingKey == "" {
		c.Notifications.SMSRoutingKey = "sms.send"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	s := c.Schedule
	if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
		return fmt.Errorf("%w: schedule hours %d..%d", ErrInvalidConfig, s.StartHour, s.EndHour)
	}
	if s.BlockHours <= 0 {
		return fmt.Errorf("%w: schedule.block_hours must be positive", ErrInvalidConfig)
	}
	if s.StandardRate < 0 || s.EveningRate < 0 {
		return fmt.Errorf("%w: schedule rates must not be negative", ErrInvalidConfig)
	}

	if c.Hall.Capacity < 0 {
		return fmt.Errorf("%w: hall.capacity must not be negative", ErrInvalidConfig)
	}
	if c.Invoice.TaxRate < 0 || c.Invoice.TaxRate >= 1 {
		return fmt.Errorf("%w: invoice.tax_rate=%v out of range", ErrInvalidConfig, c.Invoice.TaxRate)
	}
	if c.Seed.Enabled && c.Seed.File == "" {
		return fmt.Errorf("%w: seed.file is required when seed is enabled", ErrInvalidConfig)
	}

	return nil
}

// SlotSchedule конвертирует расписание в доменную модель
func (c *Config) SlotSchedule() domain.SlotSchedule {
	return domain.SlotSchedule{
		StartHour:       c.Schedule.StartHour,
		EndHour:         c.Schedule.EndHour,
		BlockHours:      c.Schedule.BlockHours,
		StandardRate:    c.Schedule.StandardRate,
		EveningRate:     c.Schedule.EveningRate,
		EveningFromHour: c.Schedule.EveningFromHour,
	}
}

// HallDetails конвертирует данные зала в доменную модель
func (c *Config) HallDetails() domain.Hall {
	return domain.Hall{
		Name:     c.Hall.Name,
		Address:  c.Hall.Address,
		Phone:    c.Hall.Phone,
		Email:    c.Hall.Email,
		Capacity: c.Hall.Capacity,
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
