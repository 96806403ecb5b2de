package mime

type Charset = string

const (
	UTF8   Charset = "UTF-8"
	UTF16  Charset = "UTF-16"
	ASCII  Charset = "US-ASCII"
	Latin1 Charset = "ISO-8859-1"
	CP1251 Charset = "windows-1251"
	CP1252 Charset = "windows-1252"
)
