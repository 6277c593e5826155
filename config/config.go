package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/spf13/cast"
)

const (
	EnvPlayers       = "UNO_PLAYERS"
	EnvStackDraws    = "UNO_STACK_DRAWS"
	EnvRandomStart   = "UNO_RANDOM_START"
	EnvColorRoulette = "UNO_COLOR_ROULETTE"
	EnvHandSize      = "UNO_HAND_SIZE"
	EnvSeed          = "UNO_SEED"
	EnvIdleTimeout   = "UNO_IDLE_TIMEOUT"
)

var DefaultPlayers = []string{"Ben", "Alex", "Fred"}

type Config struct {
	Players     []string
	Rules       game.Rules
	IdleTimeout time.Duration
}

// Load reads the optional .env file at path, then the environment. Variables
// already set win over the file.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	conf := Config{
		Players:     DefaultPlayers,
		Rules:       game.DefaultRules(),
		IdleTimeout: consts.SessionIdleTimeout,
	}
	if v, ok := lookup(EnvPlayers); ok {
		conf.Players = splitNames(v)
		if len(conf.Players) < consts.MinPlayers {
			return Config{}, fmt.Errorf("%s: %w", EnvPlayers, consts.ErrorsPlayersTooFew)
		}
	}

	var err error
	if conf.Rules.StackDraws, err = boolVar(EnvStackDraws, false); err != nil {
		return Config{}, err
	}
	if conf.Rules.RandomStart, err = boolVar(EnvRandomStart, false); err != nil {
		return Config{}, err
	}
	if conf.Rules.ColorRoulette, err = boolVar(EnvColorRoulette, false); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvHandSize); ok {
		size, err := cast.ToIntE(v)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvHandSize, v, consts.ErrorsInvalidConfiguration)
		}
		conf.Rules.HandSize = size
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := cast.ToInt64E(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvSeed, v, consts.ErrorsInvalidConfiguration)
		}
		conf.Rules.Seed = seed
	}
	if v, ok := lookup(EnvIdleTimeout); ok {
		timeout, err := cast.ToDurationE(v)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvIdleTimeout, v, consts.ErrorsInvalidConfiguration)
		}
		conf.IdleTimeout = timeout
	}
	return conf, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func boolVar(key string, fallback bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", key, v, consts.ErrorsInvalidConfiguration)
	}
	return b, nil
}

func splitNames(v string) []string {
	names := make([]string, 0)
	for _, name := range strings.Split(v, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
