package assets

import "strings"

// DefaultContentType is served for names with no table entry.
const DefaultContentType = "application/octet-stream"

// contentTypes is matched in order; the first suffix that matches wins.
// Matching is case-sensitive.
var contentTypes = []struct {
	suffix      string
	contentType string
}{
	{".html", "text/html; charset=utf-8"},
	{".js", "application/javascript; charset=utf-8"},
	{".css", "text/css; charset=utf-8"},
	{".json", "application/json; charset=utf-8"},
	{".svg", "image/svg+xml"},
	{".png", "image/png"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
}

// ContentType returns the MIME type for a file name or path.
func ContentType(name string) string {
	for _, e := range contentTypes {
		if strings.HasSuffix(name, e.suffix) {
			return e.contentType
		}
	}
	return DefaultContentType
}
