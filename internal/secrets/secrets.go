// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads search service credentials from a directory of
// plain-text files. Each file is one secret: the filename is the key and the
// trimmed contents are the value.
//
// Recognized key files: algolia-app-id, algolia-admin-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/docdata/pkg/types"
)

const (
	// AppIDKey names the file holding the Algolia application ID.
	AppIDKey = "algolia-app-id"
	// AdminKeyKey names the file holding the Algolia admin API key.
	AdminKeyKey = "algolia-admin-key"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// FillCredentials copies credentials from s into cfg where cfg has none.
// Values already set (from the environment or config file) win.
func FillCredentials(cfg *types.PublishConfig, s map[string]string) {
	if cfg.AppID == "" {
		cfg.AppID = s[AppIDKey]
	}
	if cfg.AdminKey == "" {
		cfg.AdminKey = s[AdminKeyKey]
	}
}
