// Package logger creates configured log/slog loggers for the client kit.
//
// Defaults are production-safe (JSON, info level, stdout); WithDevelopment
// switches to human-readable text output at debug level.
package logger
