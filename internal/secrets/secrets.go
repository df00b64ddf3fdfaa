// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads upstream API credentials from a directory of
// plain-text files. Each recognized key is one file: the filename is the key
// name and the file contents (trimmed) are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key file names recognized by the generation stage.
const (
	KeyOpenAIAPIKey  = "openai-api-key"
	KeyOpenAIModel   = "openai-model"
	KeyOpenAIBaseURL = "openai-base-url"
)

// knownKeys lists the key files Load looks for. Other files in the
// directory are ignored.
var knownKeys = []string{KeyOpenAIAPIKey, KeyOpenAIModel, KeyOpenAIBaseURL}

// Load reads the recognized key files from dir and returns a map of key name
// to trimmed contents. A missing directory or missing key files are not
// errors; Load returns a map with the keys it found. Unreadable key files
// produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, key := range knownKeys {
		data, err := os.ReadFile(filepath.Join(dir, key))
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", key, err)
			}
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[key] = value
		}
	}

	return secrets, nil
}

// Resolve returns the first non-empty value among the explicit value, the
// environment variable, and the secrets map entry. The explicit value wins
// so command-line flags override ambient configuration.
func Resolve(explicit, envVar, key string, secrets map[string]string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return secrets[key]
}
