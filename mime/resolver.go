package mime

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/indigo-web/mimetypes/config"
	"github.com/indigo-web/mimetypes/internal/pathlib"
	"github.com/indigo-web/mimetypes/mimedb"
)

// Resolver answers questions about types and extensions known to a database. It's
// immutable once built, therefore safe for concurrent use.
//
// All the queries report failures uniformly: the second returned value is false in
// case of empty input, input not recognized as a type or extension, or a type or
// extension unknown to the database.
type Resolver struct {
	cfg   *config.Config
	db    *mimedb.DB
	types Types
	exts  []string
}

// New builds the extensions map out of the database.
func New(db *mimedb.DB, cfg *config.Config) *Resolver {
	types := BuildTypes(db, cfg)

	return &Resolver{
		cfg:   cfg,
		db:    db,
		types: types,
		exts:  slices.Sorted(maps.Keys(types)),
	}
}

// Lookup returns the type associated with the extension of the path. The path may also
// be a bare extension, with or without the leading dot. Extensions are case-insensitive.
func (r *Resolver) Lookup(path string) (MIME, bool) {
	if len(path) == 0 {
		return "", false
	}

	// the prefix makes bare extensions look like a file name
	ext := strings.ToLower(pathlib.Ext("x." + path))
	if len(ext) <= 1 {
		return "", false
	}

	typ, found := r.types[ext[1:]]
	return typ, found
}

// Extension returns the default extension of the type, without the leading dot.
func (r *Resolver) Extension(typ string) (string, bool) {
	record, found := r.record(typ)
	if !found || len(record.Extensions) == 0 {
		return "", false
	}

	return record.Extensions[0], true
}

// Extensions returns all the extensions registered for the type, the default one
// coming first.
func (r *Resolver) Extensions(typ string) ([]string, bool) {
	record, found := r.record(typ)
	if !found || len(record.Extensions) == 0 {
		return nil, false
	}

	return slices.Clone(record.Extensions), true
}

// Charset returns the default charset of the type. That's either the one declared by the
// database or, for text types, config.Charset.TextDefault.
func (r *Resolver) Charset(typ string) (Charset, bool) {
	mime, ok := Extract(typ)
	if !ok {
		return "", false
	}

	if record, found := r.db.Record(mime); found && len(record.Charset) > 0 {
		return record.Charset, true
	}

	if strings.Contains(mime, "text/") {
		return r.cfg.Charset.TextDefault, true
	}

	return "", false
}

// ContentType returns a value suitable for the Content-Type header. The input is either
// a type or anything Lookup accepts. Unless the value already mentions a charset, the
// default one is appended (if any).
func (r *Resolver) ContentType(str string) (string, bool) {
	if len(str) == 0 {
		return "", false
	}

	mime := str
	if strings.IndexByte(str, '/') == -1 {
		var found bool
		if mime, found = r.Lookup(str); !found {
			return "", false
		}
	}

	if strings.Contains(mime, "charset") {
		return mime, true
	}

	if charset, found := r.Charset(mime); found {
		return mime + "; charset=" + strings.ToLower(charset), true
	}

	return mime, true
}

// Matches reports whether the Content-Type value agrees with the type of the path, as
// found by Lookup. Parameters of the value are ignored, an empty value matches any known
// type. Paths of unknown types never match.
func (r *Resolver) Matches(path, contentType string) bool {
	typ, found := r.Lookup(path)
	return found && Complies(typ, contentType)
}

// Compressible reports whether contents of the type are worth compressing. The second
// value is false if that's unknown.
func (r *Resolver) Compressible(typ string) (compressible, known bool) {
	record, found := r.record(typ)
	if !found || record.Compressible == nil {
		return false, false
	}

	return *record.Compressible, true
}

// Types iterates over the extensions map in ascending order of extensions.
func (r *Resolver) Types() iter.Seq2[string, MIME] {
	return func(yield func(string, MIME) bool) {
		for _, ext := range r.exts {
			if !yield(ext, r.types[ext]) {
				break
			}
		}
	}
}

// Len returns the number of known extensions.
func (r *Resolver) Len() int {
	return len(r.types)
}

func (r *Resolver) record(typ string) (mimedb.Record, bool) {
	mime, ok := Extract(typ)
	if !ok {
		return mimedb.Record{}, false
	}

	return r.db.Record(mime)
}
