// Package config loads environment-driven configuration structs.
//
// Configuration is entirely environment-based to keep deployment uniform
// across development, staging, and production: values come from process
// environment variables, with an optional .env file loaded once on first
// use for local development.
//
// Structs declare their bindings with `env` and `envDefault` tags as
// understood by github.com/caarlos0/env.
//
// # Usage
//
//	import "github.com/dmitrymomot/mongokit/pkg/config"
//
//	cfg := config.MustLoad[mongokit.Config]()
//	manager, err := mongokit.New(cfg)
package config
