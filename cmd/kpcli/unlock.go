package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/glabrego/keepass-cli/internal/vault"
)

type openFunc func(path string, creds vault.Credentials) (*vault.Tree, error)

type readPasswordFunc func(prompt string) (string, error)

type unlocker struct {
	open         openFunc
	readPassword readPasswordFunc
	logger       *zap.SugaredLogger
}

// unlock opens the database at path. A non-nil password, empty or not, is
// tried once. Otherwise a typed password is asked again after a decrypt
// failure, up to attempts times.
func (u unlocker) unlock(path string, password *string, keyFile string, attempts int) (*vault.Tree, error) {
	if password != nil {
		u.logger.Debugw("open database", "path", path, "keyfile", keyFile != "")
		return u.open(path, vault.Credentials{Password: password, KeyFile: keyFile})
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		typed, err := u.readPassword(fmt.Sprintf("Password for %s: ", path))
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}

		creds := vault.Credentials{KeyFile: keyFile}
		if typed != "" || keyFile == "" {
			creds.Password = &typed
		}

		u.logger.Debugw("open database", "path", path, "attempt", attempt, "keyfile", keyFile != "")
		tree, err := u.open(path, creds)
		if err == nil {
			return tree, nil
		}
		if !errors.Is(err, vault.ErrDecrypt) {
			return nil, err
		}
		u.logger.Warnw("wrong credentials", "path", path, "attempt", attempt, "of", attempts)
		lastErr = err
	}
	return nil, lastErr
}

// terminalPassword reads a secret from stdin without echo, writing the
// prompt to out.
func terminalPassword(out io.Writer) readPasswordFunc {
	return func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
