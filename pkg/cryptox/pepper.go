package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
)

// Argon2id work factors. Tuned per the OWASP minimums; raise memory first if
// hardware allows.
const (
	memory      = 19 * 1024 // KiB (19 MiB)
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

var (
	// pepper is loaded lazily from pepperFile, or generated on first use.
	pepper     string
	pepperFile string
)

// SetPepperPath sets the file the pepper is loaded from. Call once at startup
// before any password is hashed or verified.
func SetPepperPath(file string) {
	pepperFile = file
}

// GetPepper returns the process-wide pepper mixed into every password hash.
// A missing pepper file is created with fresh random material; losing that
// file invalidates every stored hash, so it must be backed up alongside the
// database.
func GetPepper() string {
	if pepper != "" {
		return pepper
	}

	var err error
	pepper, err = loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}

	return pepper
}

func loadOrGeneratePepper() (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(pepperFile); os.IsNotExist(err) {
		raw := make([]byte, keyLength)
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		generated := base64.RawURLEncoding.EncodeToString(raw)

		if err := os.WriteFile(pepperFile, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	existing, err := os.ReadFile(pepperFile)
	if err != nil {
		return "", err
	}
	return string(existing), nil
}
