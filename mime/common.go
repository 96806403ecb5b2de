package mime

import (
	"github.com/indigo-web/mimetypes/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	CSS            MIME = "text/css"
	CSV            MIME = "text/csv"
	XML            MIME = "application/xml"
	JSON           MIME = "application/json"
	YAML           MIME = "application/yaml"
	PDF            MIME = "application/pdf"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	Multipart      MIME = "multipart/form-data"
	ZIP            MIME = "application/zip"
	GZIP           MIME = "application/gzip"
	ZSTD           MIME = "application/zstd"
	WASM           MIME = "application/wasm"
	JS             MIME = "application/javascript"
	AVIF           MIME = "image/avif"
	GIF            MIME = "image/gif"
	JPEG           MIME = "image/jpeg"
	PNG            MIME = "image/png"
	SVG            MIME = "image/svg+xml"
	ICO            MIME = "image/vnd.microsoft.icon"
	WEBP           MIME = "image/webp"
)

// Complies returns whether two MIMEs are compatible. Parameters are ignored, types are
// compared case-insensitively. Empty MIME is considered compatible with any other MIME
func Complies(mime MIME, with string) bool {
	with, _ = strutil.CutHeader(with)
	return len(with) == 0 || strcomp.EqualFold(with, mime)
}
