package vault

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tobischo/gokeepasslib/v3"
)

var (
	ErrDecrypt = errors.New("cannot decrypt database")
	ErrKeyFile = errors.New("cannot use keyfile")
)

const defaultRootName = "Root"

// Credentials unlock a database. A nil Password means "no password", which
// is different from an empty one.
type Credentials struct {
	Password *string
	KeyFile  string
}

func (c Credentials) build() (*gokeepasslib.DBCredentials, error) {
	switch {
	case c.Password != nil && c.KeyFile != "":
		creds, err := gokeepasslib.NewPasswordAndKeyCredentials(*c.Password, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrKeyFile, c.KeyFile, err)
		}
		return creds, nil
	case c.KeyFile != "":
		creds, err := gokeepasslib.NewKeyCredentials(c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrKeyFile, c.KeyFile, err)
		}
		return creds, nil
	case c.Password != nil:
		return gokeepasslib.NewPasswordCredentials(*c.Password), nil
	default:
		return nil, errors.New("no password or keyfile given")
	}
}

// OpenFile reads a KDBX file and decrypts it with creds.
func OpenFile(path string, creds Credentials) (*Tree, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read database %s: %w", path, err)
	}
	return Open(bytes.NewReader(raw), creds)
}

// Open decodes a KDBX stream and copies its groups and entries into a Tree.
// Protected values are unlocked, so the Tree holds clear-text fields.
func Open(r io.Reader, creds Credentials) (*Tree, error) {
	dbCreds, err := creds.build()
	if err != nil {
		return nil, err
	}

	db := gokeepasslib.NewDatabase()
	db.Credentials = dbCreds
	if err := gokeepasslib.NewDecoder(r).Decode(db); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("%w: unlock protected values: %v", ErrDecrypt, err)
	}
	if db.Content == nil || db.Content.Root == nil {
		return nil, fmt.Errorf("%w: database has no root group", ErrDecrypt)
	}

	groups := db.Content.Root.Groups
	if len(groups) == 1 {
		t := NewTree(groups[0].Name)
		copyGroup(t, t.Root(), groups[0])
		return t, nil
	}

	name := defaultRootName
	if db.Content.Meta != nil && db.Content.Meta.DatabaseName != "" {
		name = db.Content.Meta.DatabaseName
	}
	t := NewTree(name)
	for _, g := range groups {
		copyGroup(t, t.AddGroup(t.Root(), g.Name), g)
	}
	return t, nil
}

// copyGroup appends entries before sub-groups, the order KeePass writers
// serialise a group's children in.
func copyGroup(t *Tree, dst NodeID, src gokeepasslib.Group) {
	for _, e := range src.Entries {
		fields := make(map[string]string, len(e.Values))
		for _, v := range e.Values {
			fields[v.Key] = v.Value.Content
		}
		t.AddEntry(dst, fields)
	}
	for _, g := range src.Groups {
		copyGroup(t, t.AddGroup(dst, g.Name), g)
	}
}
