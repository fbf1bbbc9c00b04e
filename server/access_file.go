package main

import (
	"io/ioutil"

	"github.com/brigadecore/brigade-foundations/file"
	"github.com/pkg/errors"
)

// accessFile owns the durable form of the credential record. The core only
// ever sees the raw string; reading and rewriting the file is the
// embedding application's job.
type accessFile struct {
	path string
}

// load reads the persisted record. A missing file simply means the
// application has never been authorized and yields an empty string.
func (a *accessFile) load() (string, error) {
	exists, err := file.Exists(a.path)
	if err != nil {
		return "", errors.Wrapf(err, "error checking for file %s", a.path)
	}
	if !exists {
		return "", nil
	}
	raw, err := ioutil.ReadFile(a.path)
	if err != nil {
		return "", errors.Wrapf(err, "error reading file %s", a.path)
	}
	return string(raw), nil
}

// save rewrites the persisted record in full.
func (a *accessFile) save(raw string) error {
	if err := ioutil.WriteFile(a.path, []byte(raw), 0600); err != nil {
		return errors.Wrapf(err, "error writing file %s", a.path)
	}
	return nil
}
