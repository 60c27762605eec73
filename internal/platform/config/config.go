// Package config resolves process settings from the environment.
package config

import (
	"net"
	"os"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

// bindHost is the listen address; the server always binds every interface.
const bindHost = "0.0.0.0"

// Config holds the resolved process settings.
type Config struct {
	Port string
}

// Addr returns the host:port the server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(bindHost, c.Port)
}

// Load reads an optional .env file from the working directory, then resolves
// settings from the environment. Variables already set in the environment
// take precedence over the file.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv resolves settings from the current environment only.
func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	return Config{Port: port}
}
