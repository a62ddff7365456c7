// Package config reads the game configuration from the environment, after
// loading a .env file when one exists.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/tsujio/game-scramble/game"
)

type Config struct {
	Settings game.Settings
	Seed     int64
	SaveDir  string
	SoundDir string
	Profile  game.Profile
}

// Load applies the given env files (".env" when none are named) and reads
// the GAME_* variables over the defaults. Missing files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "load %s", f)
		}
	}
	return FromEnv()
}

// FromEnv reads the GAME_* variables without touching any file.
func FromEnv() (*Config, error) {
	c := &Config{
		Settings: game.DefaultSettings(),
		Seed:     time.Now().Unix(),
		SaveDir:  defaultSaveDir(),
		Profile:  game.Profile{Name: "PLAYER", Country: "--"},
	}

	s := &c.Settings
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"GAME_SCREEN_WIDTH", &s.ScreenWidth},
		{"GAME_SCREEN_HEIGHT", &s.ScreenHeight},
		{"GAME_SCROLL_SPEED", &s.ScrollSpeed},
		{"GAME_PLAYER_SPEED", &s.PlayerSpeed},
		{"GAME_BULLET_SPEED", &s.BulletSpeed},
		{"GAME_ROCKET_SPEED", &s.RocketSpeed},
	} {
		if err := positiveFloat(f.key, f.dst); err != nil {
			return nil, err
		}
	}

	if v, ok := os.LookupEnv("GAME_ROCKET_FREQUENCY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, errors.Errorf("GAME_ROCKET_FREQUENCY: invalid duration %q", v)
		}
		s.RocketFrequency = d
	}

	if v, ok := os.LookupEnv("GAME_RAND_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "GAME_RAND_SEED")
		}
		c.Seed = seed
	}
	if v := os.Getenv("GAME_SAVE_DIR"); v != "" {
		c.SaveDir = v
	}
	c.SoundDir = os.Getenv("GAME_SOUND_DIR")
	if v := os.Getenv("GAME_PLAYER_NAME"); v != "" {
		c.Profile.Name = v
	}
	if v := os.Getenv("GAME_PLAYER_COUNTRY"); v != "" {
		c.Profile.Country = v
	}
	return c, nil
}

func positiveFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.Wrap(err, key)
	}
	if f <= 0 {
		return errors.Errorf("%s: must be positive, got %v", key, f)
	}
	*dst = f
	return nil
}

func defaultSaveDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".scramble"
	}
	return filepath.Join(dir, "scramble")
}
