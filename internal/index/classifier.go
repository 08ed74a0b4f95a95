package index

import "strings"

// Category is the display category presentation code switches on
type Category string

const (
	CategoryImage    Category = "image"
	CategoryPDF      Category = "pdf"
	CategoryWord     Category = "word"
	CategoryDocument Category = "document"
	CategoryUnknown  Category = "unknown"
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
	"svg":  true,
}

// Classify determines the display category of a file. The declared MIME type
// is authoritative when present; the file extension is only a fallback.
func Classify(name, mimeType string) Category {
	if mimeType != "" {
		switch {
		case strings.HasPrefix(mimeType, "image/"):
			return CategoryImage
		case mimeType == "application/pdf":
			return CategoryPDF
		case strings.Contains(mimeType, "word") || strings.Contains(mimeType, "document"):
			return CategoryWord
		}
	}

	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = strings.ToLower(name[i+1:])
	}

	switch {
	case imageExtensions[ext]:
		return CategoryImage
	case ext == "pdf":
		return CategoryPDF
	case ext == "doc" || ext == "docx":
		return CategoryWord
	case name != "":
		return CategoryDocument
	default:
		return CategoryUnknown
	}
}
