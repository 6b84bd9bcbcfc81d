// Where: internal/branding/validate.go
// What: Input validation for theme color and logo path.
// Why: Reject bad branding inputs before any API call is made.
package branding

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SupportedLogoFormats lists the file extensions the portal accepts for
// logo uploads, lowercase with leading dot.
var SupportedLogoFormats = []string{".png", ".jpeg", ".jpg"}

// NormalizeColor prepends a missing '#' and checks the #RRGGBB length.
// Character-set strictness is intentionally left to the API: any
// 7-character string passes, matching the portal tooling's contract.
func NormalizeColor(raw string) (string, error) {
	color := strings.TrimSpace(raw)
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	if len(color) != 7 {
		return "", fmt.Errorf("color %q must be in 6 character hex format", raw)
	}
	return color, nil
}

// ValidateLogoPath checks that the path carries a supported image
// extension. Existence and readability are checked at upload time.
func ValidateLogoPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedLogoFormats {
		if ext == supported {
			return nil
		}
	}
	return fmt.Errorf("logo %q is not one of %s", path, strings.Join(SupportedLogoFormats, ", "))
}

// LogoContentType derives the upload Content-Type from the file extension.
// ValidateLogoPath must have accepted the path first.
func LogoContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}
