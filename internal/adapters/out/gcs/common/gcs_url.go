package common

import (
	"fmt"
	"net/url"
	"strings"
)

// allowedImageHosts is the set of storage hostnames product and category
// image URLs may point at. Anything else is treated as untrusted input and
// never rendered or deleted.
var allowedImageHosts = map[string]struct{}{
	"storage.googleapis.com":         {},
	"storage.cloud.google.com":       {},
	"firebasestorage.googleapis.com": {},
}

// PublicURL builds a public download URL for an object.
// The leading "/" of objectPath is stripped.
func PublicURL(bucket, objectPath string) string {
	b := strings.TrimSpace(bucket)
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b, obj)
}

// IsAllowedImageURL reports whether u points at one of the allowed storage
// hosts.
func IsAllowedImageURL(u string) bool {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return false
	}
	_, ok := allowedImageHosts[strings.ToLower(parsed.Host)]
	return ok
}

// ParseObjectURL parses a storage URL and returns (bucket, objectPath, ok).
// Supported forms:
//   - https://storage.googleapis.com/<bucket>/<object>
//   - https://storage.cloud.google.com/<bucket>/<object>
//   - https://firebasestorage.googleapis.com/v0/b/<bucket>/o/<escaped object>
func ParseObjectURL(u string) (string, string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return "", "", false
	}

	switch strings.ToLower(parsed.Host) {
	case "storage.googleapis.com", "storage.cloud.google.com":
		return parsePathStyleURL(parsed)
	case "firebasestorage.googleapis.com":
		return parseFirebaseDownloadURL(parsed)
	default:
		return "", "", false
	}
}

func parsePathStyleURL(parsed *url.URL) (string, string, bool) {
	p := strings.TrimLeft(parsed.EscapedPath(), "/")
	if p == "" {
		return "", "", false
	}

	parts := strings.SplitN(p, "/", 2)
	if len(parts) < 2 {
		return "", "", false
	}

	objectPath, err := url.PathUnescape(parts[1])
	if err != nil || objectPath == "" {
		return "", "", false
	}
	return parts[0], objectPath, true
}

// parseFirebaseDownloadURL handles download URLs minted by the Firebase
// Storage SDK, which escapes the object name into a single path segment:
// /v0/b/<bucket>/o/<object with %2F separators>, usually with ?alt=media.
func parseFirebaseDownloadURL(parsed *url.URL) (string, string, bool) {
	p := strings.TrimLeft(parsed.EscapedPath(), "/")
	parts := strings.Split(p, "/")
	if len(parts) < 5 || parts[0] != "v0" || parts[1] != "b" || parts[3] != "o" {
		return "", "", false
	}

	bucket := parts[2]
	objectPath, err := url.PathUnescape(strings.Join(parts[4:], "/"))
	if err != nil || bucket == "" || objectPath == "" {
		return "", "", false
	}
	return bucket, objectPath, true
}
