// Package config loads environment-based configuration into tagged structs.
//
// It wraps github.com/caarlos0/env with a one-time .env load via
// github.com/joho/godotenv, so local development picks up a .env file while
// deployed processes read the real environment.
package config
