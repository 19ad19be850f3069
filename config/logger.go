package config

import (
	"github.com/MonkyMars/gecho"
)

var logger gecho.Logger

// InitializeLogger builds the process-wide logger at the level the
// environment dictates. Caller info stays off in production output.
func InitializeLogger() *gecho.Logger {
	logger = *gecho.NewLogger(gecho.NewConfig(
		gecho.WithLogLevel(gecho.ParseLogLevel(GetLogLevel())),
		gecho.WithShowCaller(!IsProduction()),
	))
	return &logger
}

func GetLogger() *gecho.Logger {
	return &logger
}
