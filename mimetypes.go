// Package mimetypes resolves MIME types by file extensions and vice versa, using the
// database shipped with mimedb. Everything here delegates to a mime.Resolver built once
// during the package initialization; build your own with mime.New in order to use
// another database or settings.
package mimetypes

import (
	"iter"

	"github.com/indigo-web/mimetypes/config"
	"github.com/indigo-web/mimetypes/mime"
	"github.com/indigo-web/mimetypes/mimedb"
)

var std = mime.New(mimedb.Default(), config.Default())

// Default returns the resolver used by the package-level functions.
func Default() *mime.Resolver {
	return std
}

// Lookup returns the type of a file path or extension. See mime.Resolver.Lookup.
func Lookup(path string) (mime.MIME, bool) {
	return std.Lookup(path)
}

// Extension returns the default extension of the type. See mime.Resolver.Extension.
func Extension(typ string) (string, bool) {
	return std.Extension(typ)
}

// Extensions returns all extensions of the type. See mime.Resolver.Extensions.
func Extensions(typ string) ([]string, bool) {
	return std.Extensions(typ)
}

// Charset returns the default charset of the type. See mime.Resolver.Charset.
func Charset(typ string) (mime.Charset, bool) {
	return std.Charset(typ)
}

// ContentType returns a Content-Type header value for the type or extension. See
// mime.Resolver.ContentType.
func ContentType(str string) (string, bool) {
	return std.ContentType(str)
}

// Matches reports whether the Content-Type value agrees with the type of the path. See
// mime.Resolver.Matches.
func Matches(path, contentType string) bool {
	return std.Matches(path, contentType)
}

// Compressible reports whether the type is worth compressing. See mime.Resolver.Compressible.
func Compressible(typ string) (compressible, known bool) {
	return std.Compressible(typ)
}

// Types iterates over every known extension and its type.
func Types() iter.Seq2[string, mime.MIME] {
	return std.Types()
}
