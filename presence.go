package jsonopt

import (
	"bytes"
	"io"

	"github.com/reoring/jsonopt/internal/scan"
)

// Presence is the bit flag collected per JSON Pointer by ScanJSON.
type Presence uint8

const (
	PresenceSeen    Presence = 1 << iota // Key appeared in the input.
	PresenceWasNull                      // Key value was null.
)

// PresenceMap maps JSON Pointers to Presence flags. The root pointer "/" is
// always marked seen.
type PresenceMap map[string]Presence

// Seen reports whether the given pointer appeared in the input.
func (pm PresenceMap) Seen(path string) bool { return pm[path]&PresenceSeen != 0 }

// WasNull reports whether the given pointer held an explicit null.
func (pm PresenceMap) WasNull(path string) bool { return pm[path]&PresenceWasNull != 0 }

// ScanJSON reports which JSON Pointer paths appear in data and which of them
// hold explicit nulls. It answers the same absent/null/value question as an
// Optional-typed field, but for a whole payload at once and without declaring
// a carrier struct.
func ScanJSON(data []byte) (PresenceMap, error) {
	return ScanJSONReader(bytes.NewReader(data))
}

// ScanJSONReader is ScanJSON over an io.Reader.
func ScanJSONReader(r io.Reader) (PresenceMap, error) {
	fm, err := scan.Walk(r)
	if err != nil {
		return nil, err
	}
	pm := make(PresenceMap, len(fm))
	for k, f := range fm {
		var p Presence
		if f&scan.Seen != 0 {
			p |= PresenceSeen
		}
		if f&scan.WasNull != 0 {
			p |= PresenceWasNull
		}
		pm[k] = p
	}
	return pm, nil
}
