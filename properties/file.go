// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"

	"github.com/stacklok/actionfiles/env"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ReadFile reads and parses the property file at path.
func (c *Codec) ReadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading properties from %s: %w", path, err)
	}
	set, err := c.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.logger.Debug("read properties", "path", path, "count", set.Len())
	return set, nil
}

// WriteFile replaces the contents of path with the encoded set.
// The data is written to a temporary file in the same directory and renamed
// into place, so readers never observe a partially written file. An existing
// file keeps its permissions.
func (c *Codec) WriteFile(path string, set *Set) error {
	content, err := c.Stringify(set)
	if err != nil {
		return err
	}

	f, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(filePerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("writing properties to %s: %w", path, err)
	}
	defer func() { _ = f.Cleanup() }()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing properties to %s: %w", path, err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("writing properties to %s: %w", path, err)
	}
	c.logger.Debug("wrote properties", "path", path, "count", set.Len())
	return nil
}

// AppendFile appends the encoded set to path, leaving existing content in
// place. Missing parent directories and the file itself are created.
func (c *Codec) AppendFile(path string, set *Set) (err error) {
	content, err := c.Stringify(set)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if c.lockFile {
		lock := flock.New(path, flock.SetPermissions(filePerm))
		if err := lock.Lock(); err != nil {
			return fmt.Errorf("locking %s: %w", path, err)
		}
		defer func() {
			if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
				err = fmt.Errorf("unlocking %s: %w", path, unlockErr)
			}
		}()
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending properties to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("appending properties to %s: %w", path, err)
	}
	c.logger.Debug("appended properties", "path", path, "count", set.Len())
	return nil
}

// ReadEnvFile reads the property file named by the environment variable key.
func (c *Codec) ReadEnvFile(r env.Reader, key string) (*Set, error) {
	path, err := env.LookupPath(r, key)
	if err != nil {
		return nil, err
	}
	return c.ReadFile(path)
}

// WriteEnvFile overwrites the property file named by the environment
// variable key.
func (c *Codec) WriteEnvFile(r env.Reader, key string, set *Set) error {
	path, err := env.LookupPath(r, key)
	if err != nil {
		return err
	}
	return c.WriteFile(path, set)
}

// AppendEnvFile appends to the property file named by the environment
// variable key.
func (c *Codec) AppendEnvFile(r env.Reader, key string, set *Set) error {
	path, err := env.LookupPath(r, key)
	if err != nil {
		return err
	}
	return c.AppendFile(path, set)
}

// ReadFile reads path using a Codec with default options.
func ReadFile(path string) (*Set, error) {
	return defaultCodec.ReadFile(path)
}

// WriteFile overwrites path using a Codec with default options.
func WriteFile(path string, set *Set) error {
	return defaultCodec.WriteFile(path, set)
}

// AppendFile appends to path using a Codec with default options.
func AppendFile(path string, set *Set) error {
	return defaultCodec.AppendFile(path, set)
}
