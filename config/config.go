package config

import (
	"github.com/indigo-web/mimetypes/mimedb"
)

type (
	Sources struct {
		// Preference lists the authorities from the least to the most preferred one. When
		// an extension is claimed by multiple types, the one whose source is preferred wins.
		// Sources which aren't listed are ranked the same as mimedb.None.
		Preference []mimedb.Source
	}

	Types struct {
		// Replaceable is a type which never keeps an extension once another type claims it,
		// regardless of their sources.
		Replaceable string
		// Prealloc is the initial capacity of the extensions map.
		Prealloc int
	}

	Charset struct {
		// TextDefault is reported for text/* types which declare no charset on their own.
		TextDefault string
	}
)

// Config holds settings used by mime.Resolver when building the extensions map and
// answering queries.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous results.
type Config struct {
	Sources Sources
	Types   Types
	Charset Charset
}

// Default returns default config. It reproduces the resolution rules of the mime-types
// package, so in most cases it shouldn't be modified.
func Default() *Config {
	return &Config{
		Sources: Sources{
			Preference: []mimedb.Source{
				mimedb.Nginx, mimedb.Apache, mimedb.None, mimedb.IANA,
			},
		},
		Types: Types{
			Replaceable: "application/octet-stream",
			// the embedded mime-db 1.35.0 maps 1079 extensions
			Prealloc: 1100,
		},
		Charset: Charset{
			TextDefault: "UTF-8",
		},
	}
}

// Rank returns the position of the source in the preference order. Unknown sources
// share the rank of mimedb.None. If even that isn't listed, -1 is returned.
func (s Sources) Rank(source mimedb.Source) int {
	if rank := s.index(source); rank != -1 {
		return rank
	}

	return s.index(mimedb.None)
}

func (s Sources) index(source mimedb.Source) int {
	for i, src := range s.Preference {
		if src == source {
			return i
		}
	}

	return -1
}
