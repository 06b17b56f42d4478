// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded from the working directory when present.
const dotEnvFile = ".env"

// loadDotEnv exports the variables of the given files, or of ./.env when
// none are given. Variables already present in the environment win, and a
// missing file is skipped.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{dotEnvFile}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("error loading %s: %w", file, err)
	}

	return nil
}

// parseEnv fills cfg from APP_*, STORAGE_*, SERVER_* and ADAPTER_* variables
// through the `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
