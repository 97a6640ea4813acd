package capability

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ValidPattern reports whether p is a well-formed "type/subtype" pattern.
// The subtype may be the wildcard "*"; the type may not.
func ValidPattern(p string) bool {
	typ, sub, ok := strings.Cut(p, "/")
	if !ok || typ == "" || sub == "" || typ == "*" {
		return false
	}
	if strings.ContainsAny(sub, "/;") || p != strings.ToLower(p) {
		return false
	}
	// '*' is a token character, so the wildcard form parses too.
	_, params, err := mime.ParseMediaType(p)
	return err == nil && len(params) == 0
}

// Normalize lowercases a media type and strips parameters
// ("Text/Plain; charset=utf-8" -> "text/plain"). It returns "" for malformed input.
func Normalize(mediaType string) string {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil || !strings.Contains(mt, "/") || strings.Contains(mt, "*") {
		return ""
	}
	return mt
}

// Match applies type/subtype wildcard semantics: "image/*" matches "image/png",
// exact patterns match only themselves.
func Match(pattern, mediaType string) bool {
	mt := Normalize(mediaType)
	if mt == "" {
		return false
	}
	if pattern == mt {
		return true
	}
	typ, sub, _ := strings.Cut(pattern, "/")
	if sub != "*" {
		return false
	}
	mtType, _, _ := strings.Cut(mt, "/")
	return typ == mtType
}

// MatchAny reports whether any pattern matches mediaType. An empty set matches nothing.
func MatchAny(patterns []string, mediaType string) bool {
	for _, p := range patterns {
		if Match(p, mediaType) {
			return true
		}
	}
	return false
}

// Sniff detects the media type of raw attachment bytes.
func Sniff(data []byte) string {
	return Normalize(mimetype.Detect(data).String())
}
