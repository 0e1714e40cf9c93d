// Package media turns stored media file names into public URLs.
package media

import (
	"net/url"
	"strings"

	"github.com/tcf245/dabia/internal/config"
)

// Resolver builds object URLs of the form <base>/<bucket>/<media path>/<file>.
type Resolver struct {
	base      string
	bucket    string
	mediaPath string
}

// NewResolver creates a Resolver from storage settings.
func NewResolver(cfg config.StorageConfig) *Resolver {
	return &Resolver{
		base:      strings.TrimRight(cfg.MediaBaseURL, "/"),
		bucket:    strings.Trim(cfg.Bucket, "/"),
		mediaPath: strings.Trim(cfg.MediaPath, "/"),
	}
}

// URL resolves a stored media reference. Nil and blank values yield nil,
// absolute http(s) URLs are returned as is.
func (r *Resolver) URL(name *string) *string {
	if name == nil {
		return nil
	}
	file := strings.TrimSpace(*name)
	if file == "" {
		return nil
	}
	if isAbsolute(file) {
		return &file
	}

	elems := make([]string, 0, 3)
	if r.bucket != "" {
		elems = append(elems, r.bucket)
	}
	if r.mediaPath != "" {
		elems = append(elems, r.mediaPath)
	}
	elems = append(elems, strings.TrimLeft(file, "/"))

	out, err := url.JoinPath(r.base, elems...)
	if err != nil {
		return nil
	}
	return &out
}

func isAbsolute(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
