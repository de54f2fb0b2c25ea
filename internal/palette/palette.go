// Package palette provides a named-colour store serialized as JSON, with
// optional xz compression for files carrying the .xz suffix. Colours are
// stored as their underlying fixed-point integers, so a load reproduces
// every saved colour bit for bit.
package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/pigment/pkg/hcv"
)

// Entry is one named colour in a palette.
type Entry struct {
	Name   string  `json:"name"`
	Colour hcv.HCV `json:"colour"`
}

// Palette is an ordered collection of named colours. Names are unique;
// setting an existing name replaces its colour in place.
type Palette struct {
	entries []Entry
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{}
}

// Set adds a colour under the given name, replacing any existing entry with
// that name.
func (p *Palette) Set(name string, c hcv.HCV) {
	for i := range p.entries {
		if p.entries[i].Name == name {
			p.entries[i].Colour = c
			return
		}
	}
	p.entries = append(p.entries, Entry{Name: name, Colour: c})
}

// Get returns the colour stored under name, with ok false when absent.
func (p *Palette) Get(name string) (hcv.HCV, bool) {
	for _, e := range p.entries {
		if e.Name == name {
			return e.Colour, true
		}
	}
	return hcv.HCV{}, false
}

// Remove deletes the entry with the given name, reporting whether it existed.
func (p *Palette) Remove(name string) bool {
	for i, e := range p.entries {
		if e.Name == name {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.entries) }

// Entries returns the entries in insertion order. The slice is a copy.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Sort orders the entries by name.
func (p *Palette) Sort() {
	sort.Slice(p.entries, func(i, j int) bool {
		return p.entries[i].Name < p.entries[j].Name
	})
}

// MarshalJSON encodes the palette as a JSON array of entries.
func (p *Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.entries)
}

// UnmarshalJSON decodes a palette produced by MarshalJSON.
func (p *Palette) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.entries)
}

// Save writes the palette to path as JSON. A path ending in .xz is
// compressed on the way out.
func (p *Palette) Save(path string) error {
	data, err := json.MarshalIndent(p.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}

	if strings.HasSuffix(path, ".xz") {
		var buf bytes.Buffer
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		if _, err := xzw.Write(data); err != nil {
			return fmt.Errorf("failed to compress palette: %w", err)
		}
		if err := xzw.Close(); err != nil {
			return fmt.Errorf("failed to finish compression: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}

// Load reads a palette from path, decompressing first when the path ends in
// .xz.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 - palette path supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		data, err = io.ReadAll(xzr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress palette: %w", err)
		}
	}

	p := New()
	if err := json.Unmarshal(data, &p.entries); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}
	return p, nil
}
