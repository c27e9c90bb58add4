package config

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ExcelPath       string
	SummaryPath     string
	ExpenditurePath string
	ListenAddr      string
	CurrencyUnit    string
	SessionTTL      time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, loading .env once.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using process environment")
		}

		config = &Config{
			ExcelPath:       os.Getenv("EXCEL_PATH"),
			SummaryPath:     getenv("SUMMARY_CSV", "data/summary.csv"),
			ExpenditurePath: getenv("EXPENDITURE_CSV", "data/expenditure.csv"),
			ListenAddr:      getenv("LISTEN_ADDR", ":8005"),
			CurrencyUnit:    getenv("CURRENCY_UNIT", "¥"),
			SessionTTL:      time.Hour,
		}
		if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
			if d, err := time.ParseDuration(ttl); err == nil {
				config.SessionTTL = d
			}
		}
	})
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
