// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type ServerConfig struct {
//		Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	config.MustLoadEnv(".env.local") // optional extra files
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process and cached; ResetCache
// clears the cache in tests. The default .env file in the working directory
// is read on the first Load when present.
package config
