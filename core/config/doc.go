// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// A .env file in the working directory is loaded automatically on first
// use; a missing file is not an error. Parsing is done by the
// caarlos0/env library, so struct fields use its tags:
//
//	type ServerConfig struct {
//		Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure, useful during startup.
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process and cached, so
// repeated loads of the same type are cheap and observe identical values
// even if the environment changes in between.
package config
