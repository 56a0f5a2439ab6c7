package configs

import (
	"os"
	"strings"
)

const (
	// DefaultPostFetch bounds the blog-page fetch; filtering and
	// pagination run client-style over this window.
	DefaultPostFetch = 100
	// AdminPostFetch bounds the admin post table.
	AdminPostFetch = 1000
	// RelatedPostFetch bounds the related-posts lookup on the detail page.
	RelatedPostFetch = 4

	DefaultUploadDir = "uploads"
)

// AdminEmails parses the ADMIN_EMAILS env var (comma separated) into a
// lookup set. An empty set means no account gets the admin dashboard.
func AdminEmails() map[string]struct{} {
	out := make(map[string]struct{})
	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out[e] = struct{}{}
		}
	}
	return out
}

func UploadDir() string {
	if d := os.Getenv("UPLOAD_DIR"); d != "" {
		return d
	}
	return DefaultUploadDir
}
