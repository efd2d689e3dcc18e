package constants

import "strings"

// FileTypes holds the allowed source formats recorded on ProcessJob.
var FileTypes = []string{"PDF", "IMAGE", "TXT"}

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"tif":  {},
	"tiff": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
