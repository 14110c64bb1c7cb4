package youtube

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ThumbnailSet holds a video's thumbnail variants in the exact key order the
// provider sent them. Record building picks the last entry of that order, so
// the order must survive decoding.
type ThumbnailSet struct {
	entries []Thumbnail
}

func (s ThumbnailSet) Len() int {
	return len(s.entries)
}

// Entries returns the variants in provider order.
func (s ThumbnailSet) Entries() []Thumbnail {
	out := make([]Thumbnail, len(s.entries))
	copy(out, s.entries)
	return out
}

// Last returns the variant whose key appeared last in the provider response.
func (s ThumbnailSet) Last() (Thumbnail, bool) {
	if len(s.entries) == 0 {
		return Thumbnail{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// UnmarshalJSON decodes the thumbnails object token by token so the key
// iteration order of the response body is preserved.
func (s *ThumbnailSet) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("thumbnails: expected object, got %v", tok)
	}

	s.entries = s.entries[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("thumbnails: expected key, got %v", tok)
		}

		var variant struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		}
		if err := dec.Decode(&variant); err != nil {
			return fmt.Errorf("thumbnails: decode %q: %w", name, err)
		}

		s.entries = append(s.entries, Thumbnail{
			Name:   name,
			URL:    variant.URL,
			Width:  variant.Width,
			Height: variant.Height,
		})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (s ThumbnailSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		}{entry.URL, entry.Width, entry.Height})
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
