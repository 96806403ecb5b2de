package mime

import (
	"iter"
	"strings"

	"github.com/indigo-web/mimetypes/config"
	"github.com/indigo-web/mimetypes/mimedb"
)

// Types maps extensions (without the leading dot) to their types.
type Types map[string]MIME

// BuildTypes assigns every extension found in the database to exactly one type. When
// multiple types claim the same extension, the one registered by the more preferred
// source wins (see config.Sources). If sources are equally preferred, an application/*
// type keeps the extension, otherwise the type enumerated later takes it. The
// replaceable type (see config.Types) gives its extensions away to any other claimant.
//
// The database is always enumerated in ascending order of types, so the result depends
// on the records only, never on the order they were supplied in.
func BuildTypes(db *mimedb.DB, cfg *config.Config) Types {
	types := make(Types, cfg.Types.Prealloc)
	populate(types, db, db.All(), cfg)

	return types
}

func populate(types Types, db *mimedb.DB, records iter.Seq2[string, mimedb.Record], cfg *config.Config) {
	for typ, record := range records {
		for _, ext := range record.Extensions {
			if existing, found := types[ext]; found && keeps(db, cfg, existing, record.Source) {
				continue
			}

			types[ext] = typ
		}
	}
}

// keeps reports whether an extension must stay with the existing type instead of
// being taken by a type registered by the source.
func keeps(db *mimedb.DB, cfg *config.Config, existing MIME, source mimedb.Source) bool {
	if existing == cfg.Types.Replaceable {
		return false
	}

	record, _ := db.Record(existing)
	from, to := cfg.Sources.Rank(record.Source), cfg.Sources.Rank(source)

	return from > to || (from == to && strings.Contains(existing, "application/"))
}
