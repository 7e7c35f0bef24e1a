package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

const (
	EmptyObject = "{}"
	EmptyArray  = "[]"
)

var ErrNullDocument = errors.New("document is null")

// Document is an opaque JSON payload kept in its serialized text form. No
// schema is enforced on its shape. On the wire it is a JSON string holding the
// encoded document, or null.
type Document struct {
	text    string
	present bool
}

// NewDocument wraps already-serialized JSON text.
func NewDocument(text string) Document {
	return Document{text: text, present: true}
}

// DocumentOf serializes v into a Document.
func DocumentOf(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(string(b)), nil
}

func (d Document) IsNull() bool {
	return !d.present
}

// Text returns the serialized document, or "" when null.
func (d Document) Text() string {
	return d.text
}

// Valid reports whether the document is null or holds well-formed JSON.
func (d Document) Valid() bool {
	return !d.present || json.Valid([]byte(d.text))
}

// Sanitize replaces a present but malformed document with fallback.
func (d Document) Sanitize(fallback string) Document {
	if d.Valid() {
		return d
	}
	return NewDocument(fallback)
}

// Decode parses the document into v.
func (d Document) Decode(v any) error {
	if !d.present {
		return ErrNullDocument
	}
	return json.Unmarshal([]byte(d.text), v)
}

func (d Document) MarshalJSON() ([]byte, error) {
	if !d.present {
		return []byte("null"), nil
	}
	return json.Marshal(d.text)
}

// UnmarshalJSON accepts null, a JSON string holding the encoded document, or
// the document itself inline (object, array or scalar).
func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*d = Document{}
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*d = NewDocument(text)
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return err
	}
	*d = NewDocument(compact.String())
	return nil
}
