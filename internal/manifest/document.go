package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a JSON object that remembers key order and keeps the raw
// bytes of every value it does not touch. Rewrites replace individual
// values; untouched fields serialize back exactly as they were read, so a
// template's package.json survives a metadata rewrite without churn.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		values: make(map[string]json.RawMessage),
	}
}

// Parse reads a top-level JSON object into a Document.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest root must be a JSON object")
	}

	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in manifest", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse value of %q: %w", key, err)
		}

		doc.SetRaw(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return doc, nil
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the raw value bytes for key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	raw, ok := d.values[key]
	return raw, ok
}

// GetString returns the value for key if it is a JSON string.
func (d *Document) GetString(key string) (string, bool) {
	raw, ok := d.values[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// SetRaw sets the raw value for key. New keys are appended, existing keys
// keep their position.
func (d *Document) SetRaw(key string, raw json.RawMessage) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
}

// SetString sets key to a JSON string value.
func (d *Document) SetString(key, value string) {
	encoded, _ := json.Marshal(value)
	d.SetRaw(key, encoded)
}

// Object parses the value of key as a nested Document. A missing key
// yields an empty document so callers can merge into it unconditionally.
func (d *Document) Object(key string) (*Document, error) {
	raw, ok := d.values[key]
	if !ok {
		return NewDocument(), nil
	}
	nested, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return nested, nil
}

// SetObject serializes a nested document into the value of key, indented
// one level below the top.
func (d *Document) SetObject(key string, obj *Document) {
	d.SetRaw(key, obj.serialize("  "))
}

// Serialize writes the document back to 2-space indented JSON with a
// trailing newline, the conventional package.json shape.
func (d *Document) Serialize() []byte {
	out := d.serialize("")
	return append(out, '\n')
}

func (d *Document) serialize(indent string) []byte {
	if len(d.keys) == 0 {
		return []byte("{}")
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range d.keys {
		buf.WriteString(indent)
		buf.WriteString("  ")
		encodedKey, _ := json.Marshal(key)
		buf.Write(encodedKey)
		buf.WriteString(": ")
		buf.Write(d.values[key])
		if i < len(d.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteByte('}')
	return buf.Bytes()
}
