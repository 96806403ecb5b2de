package mimedb

import (
	_ "embed"
	"sync"
)

//go:embed db.json
var embedded []byte

var (
	defaultOnce sync.Once
	defaultDB   *DB
)

// Default returns the database shipped with the package, mime-db 1.35.0 (see
// LICENSE.mime-db). It's decoded once, on the first call.
func Default() *DB {
	defaultOnce.Do(func() {
		db, err := Parse(embedded)
		if err != nil {
			panic(err)
		}

		defaultDB = db
	})

	return defaultDB
}
