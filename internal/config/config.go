package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// envVarPattern соответствует ссылкам вида ${VAR} и ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults раскрывает переменные окружения в значении конфигурации.
// Формат: ${VAR:-default}; если VAR не установлена, подставляется default.
func expandEnvWithDefaults(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}

		if value := os.Getenv(groups[1]); value != "" {
			return value
		}
		if len(groups) > 2 {
			return groups[2]
		}
		return ""
	})
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации.
// Использует generic для работы с произвольным типом конфигурации.
func InitConfig[C any](configFile string) (*C, error) {
	v := viper.New()
	ext := strings.TrimLeft(filepath.Ext(configFile), ".")

	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Раскрываем переменные окружения формата ${VAR:-default}.
	// Раскрытое значение переустанавливаем с подходящим типом: viper читает
	// "${PORT:-8080}" как строку, а конфигурация может ожидать число или bool.
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		expanded := expandEnvWithDefaults(value)

		if boolValue, err := strconv.ParseBool(expanded); err == nil && isBoolLiteral(expanded) {
			v.Set(k, boolValue)
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// isBoolLiteral принимает только явные true/false, чтобы не превращать
// строки вроде "1" или "t" в булевы значения
func isBoolLiteral(s string) bool {
	return s == "true" || s == "false"
}
