package s3driver

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)
	safeExt     = regexp.MustCompile(`^\.[a-z0-9]+$`)
)

// SafeFileName derives a collision-resistant, filesystem-and-URL-safe object
// name from an original filename, preserving a recognizable extension. The
// result begins with a sanitized form of the original base name; an
// unrecognizable extension is dropped.
func SafeFileName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !safeExt.MatchString(ext) {
		ext = ""
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = unsafeChars.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "file"
	}

	return fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
}
