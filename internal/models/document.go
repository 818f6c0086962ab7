package models

// Document is the unit of comparison. It is produced by ingestion and is
// immutable for the duration of a comparison: Content carries decoded text
// (never raw bytes) and Images carries self-contained encoded image payloads
// in document order.
type Document struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Size    int64    `json:"size"`
	Content string   `json:"content"`
	Images  [][]byte `json:"images,omitempty"`
}

// HasImages reports whether the document carries at least one image payload.
func (d *Document) HasImages() bool {
	return len(d.Images) > 0
}
