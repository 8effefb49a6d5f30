// Package config loads environment-based configuration into tagged structs.
//
// Every package in this module exposes a Config struct with `env` tags and
// sensible envDefault values; this package is the single place that parses
// them. A .env file, when present, is loaded once per process so local
// development matches deployed behavior.
package config
