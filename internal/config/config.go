// Package config resolves kiosk settings from flags, environment
// variables, and an optional .env file. Environment wins over flags so a
// deployed kiosk can be reconfigured without touching its launch script.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

type Config struct {
	ServerAddress   string
	ServerPort      int
	ChartsFile      string
	ChartsThreshold int
	SlursFile       string
	DocumentsDir    string

	// Intervals are configured in whole seconds, matching the server
	// refresh settings of the deployment configs.
	StatusInterval   time.Duration
	DocumentInterval time.Duration
	RequestTimeout   time.Duration

	LogLevel string
}

// Load parses args and applies environment overrides. A .env file in the
// working directory is loaded first if present.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var statusSecs, documentSecs, timeoutSecs int

	fs := flag.NewFlagSet("kiosk", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "server-address", "127.0.0.1", "jukebox server address")
	fs.IntVar(&cfg.ServerPort, "server-port", 8000, "jukebox server port")
	fs.StringVar(&cfg.ChartsFile, "charts-file", "charts.csv", "charts backing file")
	fs.IntVar(&cfg.ChartsThreshold, "charts-threshold", 0, "minimum plays to appear in the charts")
	fs.StringVar(&cfg.SlursFile, "slurs-file", "slurs.txt", "banned word list, one term per line")
	fs.StringVar(&cfg.DocumentsDir, "documents-dir", "documents", "local document cache directory")
	fs.IntVar(&statusSecs, "status-interval", 10, "status poll interval in seconds")
	fs.IntVar(&documentSecs, "documents-interval", 10, "document poll interval in seconds")
	fs.IntVar(&timeoutSecs, "timeout", 10, "request timeout in seconds")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("JUKEBOX_SERVER_ADDRESS"); v != "" {
		cfg.ServerAddress = v
	}
	if v := os.Getenv("JUKEBOX_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid JUKEBOX_SERVER_PORT %q", v)
		}
		cfg.ServerPort = port
	}
	if v := os.Getenv("JUKEBOX_CHARTS_FILE"); v != "" {
		cfg.ChartsFile = v
	}
	if v := os.Getenv("JUKEBOX_SLURS_FILE"); v != "" {
		cfg.SlursFile = v
	}
	if v := os.Getenv("JUKEBOX_DOCUMENTS_DIR"); v != "" {
		cfg.DocumentsDir = v
	}
	if v := os.Getenv("JUKEBOX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if statusSecs <= 0 || documentSecs <= 0 || timeoutSecs <= 0 {
		return Config{}, fmt.Errorf("intervals and timeout must be positive")
	}

	cfg.StatusInterval = time.Duration(statusSecs) * time.Second
	cfg.DocumentInterval = time.Duration(documentSecs) * time.Second
	cfg.RequestTimeout = time.Duration(timeoutSecs) * time.Second

	return cfg, nil
}
