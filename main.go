package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"clubdues/cmd/reconcile"
	"clubdues/cmd/root"
	"clubdues/cmd/suggest"
	"clubdues/cmd/validate"
	"clubdues/internal/logging"
)

func init() {
	// Load environment variables before any logging happens so the very
	// first log lines already respect LOG_LEVEL.
	loadEnvSilently()

	logLevel := configureLogLevel()
	logging.SetAllLogLevels(logLevel)

	root.Init()

	root.Cmd.AddCommand(reconcile.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
}

// loadEnvSilently loads a .env file from the current or parent directory
// without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL and returns
// it.
func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
