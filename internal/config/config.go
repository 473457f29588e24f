package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/service"
	"github.com/joho/godotenv"
)

// Load reads the .env file specified by EDGEWORTH_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("EDGEWORTH_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DatabaseURL is optional. Without it the scenario routes are not mounted.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// APIKey is the bearer token required on /v1 routes. Empty disables auth.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	return positiveFloat("RATE_LIMIT_RPS", 100)
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	return positiveInt("RATE_LIMIT_BURST", 20)
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// EconomyParams returns the default model parameters. Each of ECON_ALPHA,
// ECON_BETA, ECON_W1A and ECON_W2A overrides one field; B's endowment is
// always the remainder.
func EconomyParams() domain.Params {
	def := domain.DefaultParams()
	return domain.NewParams(
		floatOr("ECON_ALPHA", def.Alpha),
		floatOr("ECON_BETA", def.Beta),
		floatOr("ECON_W1A", def.W1A),
		floatOr("ECON_W2A", def.W2A),
	)
}

// Sweep returns the price grid used for error sweeps and reports.
func Sweep() service.SweepOptions {
	return service.SweepOptions{
		Points: positiveInt("SWEEP_POINTS", service.DefaultSweepPoints),
		Min:    positiveFloat("SWEEP_MIN", service.DefaultSweepMin),
		Max:    positiveFloat("SWEEP_MAX", service.DefaultSweepMax),
	}
}

// ParetoGrid returns the number of steps per axis for the Pareto scan.
func ParetoGrid() int {
	return positiveInt("PARETO_GRID", service.DefaultParetoGrid)
}

func floatOr(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

func positiveFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func positiveInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
