// Package media stores and lists the site's uploaded assets in an
// S3-compatible bucket.
package media

import (
	"path"
	"strings"
)

// Folders the admin panel reads and writes. ListAll scans all of them.
const (
	FolderImages  = "images"
	FolderVideos  = "videos"
	FolderGallery = "gallery"
	FolderUploads = "uploads"
)

// Folders returns the scanned folder names in display order.
func Folders() []string {
	return []string{FolderImages, FolderVideos, FolderGallery, FolderUploads}
}

// File describes one stored asset.
type File struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	FullPath    string `json:"fullPath"`
	Type        string `json:"type"`
	UploadedBy  string `json:"uploadedBy"`
	TimeCreated string `json:"timeCreated"`
}

var kindByExt = map[string]string{
	".jpg":  "image",
	".jpeg": "image",
	".png":  "image",
	".gif":  "image",
	".webp": "image",
	".svg":  "image",
	".mp4":  "video",
	".mov":  "video",
	".webm": "video",
	".avi":  "video",
}

// Kind classifies a file name by extension: "image", "video" or "unknown".
func Kind(name string) string {
	if k, ok := kindByExt[strings.ToLower(path.Ext(name))]; ok {
		return k
	}
	return "unknown"
}

// SanitizeName keeps object keys predictable: everything outside the
// allowed set becomes an underscore.
func SanitizeName(name string) string {
	name = path.Base(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
