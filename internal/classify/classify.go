// Package classify maps files to a media category from extension and MIME type.
package classify

import (
	"mime"
	"path/filepath"
	"strings"
)

// Category is the destination bucket a file sorts into.
type Category int

const (
	CategoryOther Category = iota
	CategoryImages
	CategoryVideos
	CategoryMusic
	CategoryDocuments
)

func (c Category) String() string {
	switch c {
	case CategoryImages:
		return "images"
	case CategoryVideos:
		return "videos"
	case CategoryMusic:
		return "music"
	case CategoryDocuments:
		return "documents"
	default:
		return "other"
	}
}

// documentExts always map to CategoryDocuments regardless of MIME type.
// Archives ride along because they usually hold scanned paperwork.
var documentExts = map[string]bool{
	".pdf": true, ".txt": true, ".rtf": true, ".doc": true, ".docx": true,
	".ppt": true, ".pptx": true, ".xls": true, ".xlsx": true, ".odt": true,
	".csv": true, ".msg": true, ".rar": true, ".zip": true,
}

// videoOverrideExts are formats the MIME table misclassifies or misses.
var videoOverrideExts = map[string]bool{
	".3g2": true,
}

// imageExcludeExts have image/* MIME types but are kept out of the images
// bucket: icons, layered editor files, raw TIFF scans, and GIFs.
var imageExcludeExts = map[string]bool{
	".ico": true, ".psd": true, ".tif": true, ".gif": true,
}

// The stdlib mime table only covers a handful of web types and otherwise
// depends on /etc/mime.types being present. Register everything we care
// about so Categorize behaves the same on every host.
var mimeOverrides = map[string]string{
	".bmp": "image/bmp", ".heic": "image/heic", ".heif": "image/heif",
	".ico": "image/vnd.microsoft.icon", ".jpe": "image/jpeg",
	".psd": "image/vnd.adobe.photoshop", ".raw": "image/x-raw",
	".tif": "image/tiff", ".tiff": "image/tiff",

	".avi": "video/x-msvideo", ".flv": "video/x-flv", ".m4v": "video/x-m4v",
	".mkv": "video/x-matroska", ".mov": "video/quicktime", ".mp4": "video/mp4",
	".mpeg": "video/mpeg", ".mpg": "video/mpeg", ".webm": "video/webm",
	".wmv": "video/x-ms-wmv", ".3gp": "video/3gpp",

	".aac": "audio/aac", ".flac": "audio/flac", ".m4a": "audio/mp4",
	".mp3": "audio/mpeg", ".ogg": "audio/ogg", ".wav": "audio/wav",
	".wma": "audio/x-ms-wma",
}

func init() {
	for ext, typ := range mimeOverrides {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// Categorize returns the category for path. Extension membership in the
// document and video override sets wins over the MIME type; otherwise the
// MIME type's major part decides. Unknown files land in CategoryOther.
func Categorize(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))

	if documentExts[ext] {
		return CategoryDocuments
	}
	if videoOverrideExts[ext] {
		return CategoryVideos
	}

	mimeType := mime.TypeByExtension(ext)
	switch {
	case strings.HasPrefix(mimeType, "image/") && !imageExcludeExts[ext]:
		return CategoryImages
	case strings.HasPrefix(mimeType, "video/"):
		return CategoryVideos
	case strings.HasPrefix(mimeType, "audio/"):
		return CategoryMusic
	}
	return CategoryOther
}

// IsImage reports whether path categorizes as an image. The equivalence
// engine uses this to pick the metadata comparison path.
func IsImage(path string) bool {
	return Categorize(path) == CategoryImages
}
