package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Decode builds the configuration from an optional .env file, an optional
// YAML file and the process environment, in increasing order of precedence.
// The YAML path comes from the -config flag or the CONFIG environment variable.
func Decode() (Config, error) {
	var cfg Config
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	path := os.Getenv("CONFIG")
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.StringVar(&path, "config", path, "path to the YAML configuration file")
	flagSet.Usage = cleanenv.FUsage(flagSet.Output(), &cfg, nil, flagSet.Usage)
	err = flagSet.Parse(os.Args[1:])
	if err != nil {
		return cfg, err
	}
	return DecodeFile(path)
}

// DecodeFile reads the YAML file at path, if it exists, and then the environment.
func DecodeFile(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			err = cleanenv.ReadConfig(path, &cfg)
			return cfg, err
		}
	}
	err := cleanenv.ReadEnv(&cfg)
	return cfg, err
}
