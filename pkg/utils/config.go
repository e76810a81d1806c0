package utils

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Pricing PricingConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	CORSOrigin string
}

type PricingConfig struct {
	PricePerSeat float64
	// Coupons maps an upper-cased coupon code to its percentage discount.
	Coupons map[string]float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("PRICE_PER_SEAT", 10.0)
	viper.SetDefault("COUPON_CODES", "SAVE10:10,WELCOME20:20,FESTIVE25:25")

	// .env is optional; env vars and defaults cover everything it would set
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       viper.GetString("APP_NAME"),
			Port:       viper.GetString("PORT"),
			Debug:      viper.GetBool("DEBUG"),
			LogPath:    viper.GetString("LOG_PATH"),
			CORSOrigin: viper.GetString("CORS_ORIGIN"),
		},
		Pricing: PricingConfig{
			PricePerSeat: viper.GetFloat64("PRICE_PER_SEAT"),
			Coupons:      parseCoupons(viper.GetString("COUPON_CODES")),
		},
	}

	return config, nil
}

// parseCoupons reads "CODE:percent,CODE:percent" pairs. Malformed pairs are
// skipped rather than failing startup.
func parseCoupons(raw string) map[string]float64 {
	coupons := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(parts[0]))
		percent, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || code == "" || percent <= 0 || percent > 100 {
			continue
		}
		coupons[code] = percent
	}
	return coupons
}
