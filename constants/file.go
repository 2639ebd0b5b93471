package constants

import "strings"

// AllowedImageTypes holds the MIME types accepted for photo ingestion.
var AllowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// MaxImageBytes caps the size of an inlined photo sent to the provider.
const MaxImageBytes = 10 * 1024 * 1024

// MinConfidenceDefault is the default cut-off for the confidence filter.
const MinConfidenceDefault = 0.3

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MimeForExt maps common image extensions to MIME types, for local files
// where no Content-Type header is available.
func MimeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	default:
		return ""
	}
}
