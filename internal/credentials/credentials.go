// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials resolves the Google API key. Sources are checked in
// order: an explicit value (flag or config file), the GOOGLE_API_KEY and
// STUDYAIDS_API_KEY environment variables, a .env file, and the file
// google-api-key in a secrets directory.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pdiddy/studyaids/pkg/types"
)

const (
	// EnvAPIKey is the primary environment variable for the credential.
	EnvAPIKey = "GOOGLE_API_KEY"

	// EnvAltAPIKey is the prefixed alias read after EnvAPIKey.
	EnvAltAPIKey = "STUDYAIDS_API_KEY"

	// SecretName is the file name looked up in the secrets directory.
	SecretName = "google-api-key"

	DefaultDotEnvFile = ".env"
	DefaultSecretsDir = ".secrets"
)

// ErrMissing is returned when no source yields a credential.
var ErrMissing = errors.New(EnvAPIKey + " not found; set it in the environment, a .env file or " +
	DefaultSecretsDir + "/" + SecretName)

// Credential is a resolved key and the source it came from.
type Credential struct {
	Key    string
	Source string
}

// Resolver looks up the credential. Zero fields use the process
// environment and the default file locations.
type Resolver struct {
	Getenv     func(string) string
	DotEnvFile string
	SecretsDir string
}

// Resolve returns the first non-empty credential. explicit wins over every
// other source. A missing .env file or secret file is not an error; an
// unreadable or malformed one is.
func (r Resolver) Resolve(explicit string) (Credential, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return Credential{Key: v, Source: "config"}, nil
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range []string{EnvAPIKey, EnvAltAPIKey} {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return Credential{Key: v, Source: "env:" + name}, nil
		}
	}

	dotenv := r.DotEnvFile
	if dotenv == "" {
		dotenv = DefaultDotEnvFile
	}
	vars, err := godotenv.Read(dotenv)
	switch {
	case err == nil:
		for _, name := range []string{EnvAPIKey, EnvAltAPIKey} {
			if v := strings.TrimSpace(vars[name]); v != "" {
				return Credential{Key: v, Source: dotenv}, nil
			}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Credential{}, types.ConfigurationError("read credentials", fmt.Errorf("parsing %s: %w", dotenv, err))
	}

	dir := r.SecretsDir
	if dir == "" {
		dir = DefaultSecretsDir
	}
	path := filepath.Join(dir, SecretName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if v := strings.TrimSpace(string(data)); v != "" {
			return Credential{Key: v, Source: path}, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Credential{}, types.ConfigurationError("read credentials", fmt.Errorf("reading %s: %w", path, err))
	}

	return Credential{}, types.ConfigurationError("resolve credential", ErrMissing)
}

// Mask hides all but the last four characters of key.
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
