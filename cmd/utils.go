package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from path. With an empty path it
// tries ./.env and silently continues when that file does not exist.
// Variables already present in the environment are never overridden.
func LoadEnvFile(path string) {
	if path == "" {
		if err := godotenv.Load(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("error loading .env file, continuing with environment variables: %v", err)
			}
			return
		}
		log.Printf("loaded env from .env")
		return
	}

	log.Printf("loading env from file %s", path)
	if err := godotenv.Load(path); err != nil {
		log.Fatalf("error loading .env file '%s': %v", path, err)
	}
}
