package config

import (
	"fmt"
	"strings"
)

// ConfigAPI описание API, отдается в health-check
type ConfigAPI struct {
	Title   string `mapstructure:"title"`
	Version string `mapstructure:"version"`
}

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level string `mapstructure:"level"`
}

// ConfigServer настройки HTTP сервера (таймауты в секундах)
type ConfigServer struct {
	Host                    string `mapstructure:"host"`
	Port                    int    `mapstructure:"port"`
	ReadTimeout             int    `mapstructure:"read_timeout"`
	WriteTimeout            int    `mapstructure:"write_timeout"`
	IdleTimeout             int    `mapstructure:"idle_timeout"`
	ReadHeaderTimeout       int    `mapstructure:"read_header_timeout"`
	GracefulShutdownTimeout int    `mapstructure:"graceful_shutdown_timeout"`
}

// Addr возвращает адрес для прослушивания в формате host:port
func (c *ConfigServer) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConfigHTTP настройки HTTP-слоя: CORS и rate limiting
type ConfigHTTP struct {
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSMaxAge         int    `mapstructure:"cors_max_age"`
	RateLimitRPS       int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
}

// Origins разбирает список разрешенных CORS origins из строки
// с разделителем-запятой, убирая пробелы
func (c *ConfigHTTP) Origins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Config основная структура конфигурации
type Config struct {
	API    *ConfigAPI    `mapstructure:"api"`
	Logger *ConfigLogger `mapstructure:"logger"`
	Server *ConfigServer `mapstructure:"server"`
	HTTP   *ConfigHTTP   `mapstructure:"http"`
}
