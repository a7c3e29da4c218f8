package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr  string `envconfig:"CHATCTL_ADDR" default:"localhost:50051"`
	Token string `envconfig:"CHATCTL_TOKEN"`
	// Only needed by seed and token, which mint credentials offline
	JWTSecret      string `envconfig:"JWT_SECRET"`
	JWTIssuer      string `envconfig:"JWT_ISSUER" default:"chat-gate"`
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	// CHATCTL_COLOURS enables colorized outcomes
	Colours bool `envconfig:"CHATCTL_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
