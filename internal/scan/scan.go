// Package scan walks a JSON token stream and records, per JSON Pointer, which
// paths appeared in the input and which of them held an explicit null.
package scan

import (
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Flags is the per-path bit set produced by Walk.
type Flags uint8

const (
	Seen    Flags = 1 << iota // Path appeared in the input.
	WasNull                   // Path value was null.
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

// frame tracks one open container. For objects, expectingKey alternates
// between key and value positions; for arrays, index counts elements. path is
// the JSON Pointer prefix of the container ("" for the root container).
type frame struct {
	kind         containerKind
	expectingKey bool
	key          string
	index        int
	path         string
}

// Walk consumes r as one JSON value and returns the collected flags. The root
// pointer "/" is always marked seen.
func Walk(r io.Reader) (map[string]Flags, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	pm := map[string]Flags{"/": Seen}
	var stack []frame
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return pm, nil
			}
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				p := valuePath(stack)
				pm[p] |= Seen
				advance(stack)
				f := frame{kind: kindArray, path: containerPrefix(p)}
				if v == '{' {
					f.kind = kindObject
					f.expectingKey = true
				}
				stack = append(stack, f)
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				stack[n-1].key = v
				stack[n-1].expectingKey = false
				continue
			}
			pm[valuePath(stack)] |= Seen
			advance(stack)
		case nil:
			pm[valuePath(stack)] |= Seen | WasNull
			advance(stack)
		default: // bool, json.Number, float64
			pm[valuePath(stack)] |= Seen
			advance(stack)
		}
	}
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// escapeJSONPointerToken escapes a key per RFC 6901 ('~' -> '~0', '/' -> '~1')
// so that literal slashes in keys cannot collide with nesting.
func escapeJSONPointerToken(s string) string {
	return jsonPointerEscaper.Replace(s)
}

// valuePath returns the JSON Pointer of the value about to be consumed.
func valuePath(stack []frame) string {
	n := len(stack)
	if n == 0 {
		return "/"
	}
	top := stack[n-1]
	if top.kind == kindObject {
		return top.path + "/" + escapeJSONPointerToken(top.key)
	}
	return top.path + "/" + strconv.Itoa(top.index)
}

// containerPrefix converts a value path into the pointer prefix its children
// are appended to. The root value path "/" becomes the empty prefix.
func containerPrefix(p string) string {
	if p == "/" {
		return ""
	}
	return p
}

// advance moves the enclosing container past the value just consumed.
func advance(stack []frame) {
	n := len(stack)
	if n == 0 {
		return
	}
	top := &stack[n-1]
	if top.kind == kindObject {
		top.expectingKey = true
		return
	}
	top.index++
}
