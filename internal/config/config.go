package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	AppEnv    string
	JWTSecret string

	// Payment simulator knobs.
	CheckoutDelay      time.Duration
	PaymentSuccessRate float64
}

const (
	defaultCheckoutDelay      = 2 * time.Second
	defaultPaymentSuccessRate = 0.9
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:            os.Getenv("APP_PORT"),
		AppEnv:             os.Getenv("APP_ENV"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CheckoutDelay:      defaultCheckoutDelay,
		PaymentSuccessRate: defaultPaymentSuccessRate,
	}

	if ms := os.Getenv("CHECKOUT_DELAY_MS"); ms != "" {
		v, err := strconv.Atoi(ms)
		if err != nil || v < 0 {
			log.Fatalf("invalid CHECKOUT_DELAY_MS: %q", ms)
		}
		cfg.CheckoutDelay = time.Duration(v) * time.Millisecond
	}

	if rate := os.Getenv("PAYMENT_SUCCESS_RATE"); rate != "" {
		v, err := strconv.ParseFloat(rate, 64)
		if err != nil || v < 0 || v > 1 {
			log.Fatalf("invalid PAYMENT_SUCCESS_RATE: %q", rate)
		}
		cfg.PaymentSuccessRate = v
	}

	if cfg.AppPort == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
