package mimedb

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/indigo-web/mimetypes/errors"
	json "github.com/json-iterator/go"
)

// Source is an authority which registered a type.
type Source = string

const (
	IANA   Source = "iana"
	Apache Source = "apache"
	Nginx  Source = "nginx"
	None   Source = ""
)

// Record describes a single MIME type.
type Record struct {
	Source Source `json:"source"`
	// Extensions are listed without leading dots. The first one is the default
	// extension of the type.
	Extensions []string `json:"extensions"`
	// Charset is empty unless the type explicitly declares one.
	Charset      string `json:"charset"`
	Compressible *bool  `json:"compressible"`
}

// DB is an immutable set of records keyed by the canonical type (type/subtype). It
// is safe for concurrent use.
type DB struct {
	records map[string]Record
	types   []string
}

// New copies the records into a new DB. Records aren't validated.
func New(records map[string]Record) *DB {
	db := &DB{
		records: make(map[string]Record, len(records)),
		types:   make([]string, 0, len(records)),
	}

	for typ, record := range records {
		record.Extensions = slices.Clone(record.Extensions)
		db.records[typ] = record
		db.types = append(db.types, typ)
	}

	slices.Sort(db.types)

	return db
}

// Parse decodes a database in the mime-db JSON format: an object mapping types to
// their records.
func Parse(data []byte) (*DB, error) {
	var records map[string]Record
	if err := json.ConfigDefault.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrBadDatabase, err)
	}

	for typ, record := range records {
		if len(typ) == 0 {
			return nil, errors.ErrEmptyType
		}

		if slices.Contains(record.Extensions, "") {
			return nil, fmt.Errorf("%w: %s", errors.ErrEmptyExtension, typ)
		}
	}

	return New(records), nil
}

// Record returns the record of the type. The type must be exactly in its canonical
// form, no normalization is applied.
func (db *DB) Record(typ string) (Record, bool) {
	record, found := db.records[typ]
	return record, found
}

// Len returns the number of records.
func (db *DB) Len() int {
	return len(db.records)
}

// All iterates over the records in ascending order of their types. The order doesn't
// depend on how the records were supplied.
func (db *DB) All() iter.Seq2[string, Record] {
	return func(yield func(string, Record) bool) {
		for _, typ := range db.types {
			if !yield(typ, db.records[typ]) {
				break
			}
		}
	}
}

// Types returns a copy of all the types in ascending order.
func (db *DB) Types() []string {
	return slices.Clone(db.types)
}

// Records returns a shallow copy of the records map.
func (db *DB) Records() map[string]Record {
	return maps.Clone(db.records)
}
