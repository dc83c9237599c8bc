package config

import "github.com/spf13/viper"

// Config holds everything the server reads from the environment.
type Config struct {
	Addr            string
	MongoURI        string
	MongoDB         string
	APIKey          string
	Env             string
	TrustSameOrigin bool
	RateLimitRPS    float64
	RateLimitBurst  int
}

// Load reads configuration from environment variables, with defaults for
// everything except MONGODB_URI and API_KEY.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MONGODB_DB", "zaiko")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("TRUST_SAME_ORIGIN", true)
	viper.SetDefault("RATE_LIMIT_RPS", 0)
	viper.SetDefault("RATE_LIMIT_BURST", 3)
	viper.AutomaticEnv()

	return Config{
		Addr:            viper.GetString("APP_PORT"),
		MongoURI:        viper.GetString("MONGODB_URI"),
		MongoDB:         viper.GetString("MONGODB_DB"),
		APIKey:          viper.GetString("API_KEY"),
		Env:             viper.GetString("APP_ENV"),
		TrustSameOrigin: viper.GetBool("TRUST_SAME_ORIGIN"),
		RateLimitRPS:    viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  viper.GetInt("RATE_LIMIT_BURST"),
	}
}

// IsDevelopment reports whether the access gate should be bypassed.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
