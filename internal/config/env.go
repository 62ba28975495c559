// Package config loads process configuration for the servers and the client.
//
// Servers read the environment (optionally seeded from a .env file) into tagged
// structs and validate them. The client reads an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Logging is shared by both servers.
type Logging struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
}

// GameServer configures cmd/gameserver.
type GameServer struct {
	GRPCAddr string `env:"GAME_GRPC_ADDR" envDefault:":7097" validate:"required"`
	// HTTPAddr empty disables the HTTP side channel.
	HTTPAddr     string `env:"GAME_HTTP_ADDR" envDefault:":5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// WordServerAddr empty serves words in-process from WordsFile.
	WordServerAddr string        `env:"WORD_SERVER_ADDR"`
	WordsFile      string        `env:"WORDS_FILE"`
	WordTimeout    time.Duration `env:"WORD_TIMEOUT" envDefault:"3s" validate:"gt=0"`

	StatsBackend string `env:"STATS_BACKEND" envDefault:"file" validate:"oneof=file sqlite memory"`
	StatsDir     string `env:"STATS_DIR" envDefault:"./data" validate:"required_if=StatsBackend file"`
	StatsDB      string `env:"STATS_DB" envDefault:"./data/stats.db" validate:"required_if=StatsBackend sqlite"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me" validate:"min=16"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h" validate:"gt=0"`

	Timezone string `env:"TIMEZONE" envDefault:"UTC" validate:"required,timezone"`
	Logging
}

// WordServer configures cmd/wordserver.
type WordServer struct {
	GRPCAddr  string `env:"WORD_GRPC_ADDR" envDefault:":7211" validate:"required"`
	WordsFile string `env:"WORDS_FILE"`
	Timezone  string `env:"TIMEZONE" envDefault:"UTC" validate:"required,timezone"`
	Logging
}

// Location resolves the configured time zone.
func (c GameServer) Location() (*time.Location, error) { return time.LoadLocation(c.Timezone) }

// Location resolves the configured time zone.
func (c WordServer) Location() (*time.Location, error) { return time.LoadLocation(c.Timezone) }

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDotEnv seeds the environment from files (default ".env"). Missing files
// are ignored and variables already set win.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ParseEnv fills target from the environment and validates it.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(target); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadGameServer reads the game server configuration.
func LoadGameServer() (GameServer, error) {
	var c GameServer
	err := ParseEnv(&c)
	return c, err
}

// LoadWordServer reads the word server configuration.
func LoadWordServer() (WordServer, error) {
	var c WordServer
	err := ParseEnv(&c)
	return c, err
}
