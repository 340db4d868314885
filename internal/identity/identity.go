// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identity loads the current user session from a directory of
// plain-text files. Each file holds one field: "email" and "uid". A missing
// directory or missing files degrade to an anonymous user rather than an
// error, so analysis always proceeds; only history persistence is gated on
// a real session.
package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/originality/pkg/types"
)

const (
	emailFile = "email"
	uidFile   = "uid"
)

// Anonymous is the user returned when no session exists.
var Anonymous = types.User{Anonymous: true}

// Load reads the session from dir. A missing directory, missing files, or
// an empty uid yield the anonymous user. Unreadable files produce a warning
// on stderr but do not abort.
func Load(dir string) (types.User, error) {
	if dir == "" {
		return Anonymous, nil
	}

	uid, err := readField(dir, uidFile)
	if err != nil {
		return Anonymous, err
	}
	if uid == "" {
		return Anonymous, nil
	}

	email, err := readField(dir, emailFile)
	if err != nil {
		return Anonymous, err
	}

	return types.User{Email: email, UID: uid}, nil
}

// Save writes a session to dir, creating it if needed.
func Save(dir string, user types.User) error {
	if user.Anonymous || user.UID == "" {
		return fmt.Errorf("cannot save an anonymous session")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, uidFile), []byte(user.UID+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing uid: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, emailFile), []byte(user.Email+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing email: %w", err)
	}
	return nil
}

// Clear removes the session directory. A missing directory is not an error.
func Clear(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing session directory: %w", err)
	}
	return nil
}

func readField(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		fmt.Fprintf(os.Stderr, "warning: could not read session field %s: %v\n", name, err)
		return "", nil
	}
	return strings.TrimSpace(string(data)), nil
}
