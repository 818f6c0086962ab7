package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/aleister1102/doccompare/internal/models"
	"github.com/rs/zerolog"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// DocumentLoader reads files from disk into documents. Image files become
// single-image documents with no text content; binary files are reduced to
// their printable strings so the text layers still have something to compare.
type DocumentLoader struct {
	logger zerolog.Logger
}

// NewDocumentLoader creates a new document loader
func NewDocumentLoader(logger zerolog.Logger) *DocumentLoader {
	return &DocumentLoader{
		logger: logger.With().Str("component", "DocumentLoader").Logger(),
	}
}

// Load reads a single file into a document.
func (dl *DocumentLoader) Load(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, errorwrapper.WrapError(err, "failed to read document file")
	}

	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))

	doc := models.Document{
		Name: name,
		Type: strings.TrimPrefix(ext, "."),
		Size: int64(len(data)),
	}

	switch {
	case imageExtensions[ext]:
		doc.Images = [][]byte{data}
		dl.logger.Debug().Str("file", name).Msg("Loaded image document")
	case IsBinary(data):
		doc.Content = ExtractStrings(data)
		dl.logger.Debug().
			Str("file", name).
			Int("extracted_bytes", len(doc.Content)).
			Msg("Loaded binary document as printable strings")
	default:
		doc.Content = string(data)
	}

	return doc, nil
}

// LoadAll reads every path into a document, in order. It fails fast on the
// first unreadable file.
func (dl *DocumentLoader) LoadAll(paths []string) ([]models.Document, error) {
	documents := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := dl.Load(path)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	dl.logger.Info().Int("count", len(documents)).Msg("Loaded documents")
	return documents, nil
}
