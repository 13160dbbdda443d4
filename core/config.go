package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug      bool
		TestMode   bool
		Env        string
		Build      string
		AppName    string
		SecretKey  []byte
		AdminEmail string

		DefaultFromEmail string
		SendgridAPIKey   string
		RollbarToken     string

		JWTExpirationDelta time.Duration

		Server   ServerConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host            string
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
	}

	DatabaseConfig struct {
		// URL is the connection string. Empty means "use the in-memory store".
		URL string
	}
)

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// NewConfig loads the application configuration: defaults first, then an
// optional `config/.env.<env>` file, then environment variables (which win).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Morox")
	conf.SetDefault("secretKey", "2yj+#c0b8h&g!q02n)8yp7e3e*0k^-(iu$t#@11)1s7mwkv&dr")
	conf.SetDefault("adminEmail", "")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("build", "dev")
	conf.SetDefault("jwtExpirationDelta", 24*time.Hour)
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", "8000")
	conf.SetDefault("serverShutdownTimeout", 20*time.Second)
	conf.SetDefault("serverReadTimeout", 5*time.Second)
	conf.SetDefault("serverWriteTimeout", 10*time.Second)
	conf.SetDefault("database_url", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:              conf.GetBool("debug"),
		TestMode:           testMode,
		Env:                env,
		Build:              conf.GetString("build"),
		AppName:            conf.GetString("appName"),
		SecretKey:          []byte(conf.GetString("secretKey")),
		AdminEmail:         conf.GetString("adminEmail"),
		DefaultFromEmail:   conf.GetString("defaultFromEmail"),
		SendgridAPIKey:     conf.GetString("sendgridApiKey"),
		RollbarToken:       conf.GetString("rollbarToken"),
		JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Port:            conf.GetString("serverPort"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
			ReadTimeout:     conf.GetDuration("serverReadTimeout"),
			WriteTimeout:    conf.GetDuration("serverWriteTimeout"),
		},
		Database: DatabaseConfig{
			URL: conf.GetString("database_url"),
		},
	}
}
