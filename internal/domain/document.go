package domain

// Section is one body section delimited by an ATX heading.
type Section struct {
	Level int      `json:"level"`
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
}

// Document is the parsed representation of one skill file: front matter
// fields, body sections, and the originating path. Immutable once parsed.
type Document struct {
	Name       string            `json:"name"`
	Dir        string            `json:"dir"`
	Path       string            `json:"path"`
	Fields     map[string]string `json:"fields"`
	FieldOrder []string          `json:"field_order,omitempty"`
	Sections   []Section         `json:"sections,omitempty"`
	Body       []string          `json:"body,omitempty"`
	Raw        []byte            `json:"-"`
}

// Field returns a front matter field value, or "" when absent.
func (d *Document) Field(key string) string {
	return d.Fields[key]
}

// HasField reports whether the front matter declares key, even if empty.
func (d *Document) HasField(key string) bool {
	_, ok := d.Fields[key]
	return ok
}
