package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/config"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/logger"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/server"
)

const defaultConfigFile = "config.yml"

func main() {
	// Путь к конфигурации можно переопределить переменной окружения
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	// Загружаем конфигурацию из файла
	appConfig, err := config.InitConfig[config.Config](configFile)
	if err != nil {
		log.Fatalf("Error initializing config: %v", err)
	}

	logg := logger.New(appConfig.Logger.Level)
	logg.Info().
		Str("title", appConfig.API.Title).
		Str("version", appConfig.API.Version).
		Msg("starting service")

	srv := server.New(appConfig, logg)

	// Канал для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	select {
	case err := <-errChan:
		logg.Fatal().Err(err).Msg("server error")
	case sig := <-sigChan:
		logg.Info().Str("signal", sig.String()).Msg("received signal")
	}

	if err := srv.Shutdown(); err != nil {
		logg.Warn().Err(err).Msg("shutdown finished with error")
	}

	logg.Info().Msg("service stopped")
}
