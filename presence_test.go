package jsonopt_test

import (
	"strings"
	"testing"

	"github.com/reoring/jsonopt"
)

func TestScanJSON_FlagsPerPointer(t *testing.T) {
	pm, err := jsonopt.ScanJSON([]byte(`{"a":1,"b":null,"c":{"d":null},"e":[null,2],"f":"x"}`))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	seen := []string{"/", "/a", "/b", "/c", "/c/d", "/e", "/e/0", "/e/1", "/f"}
	for _, p := range seen {
		if !pm.Seen(p) {
			t.Fatalf("expected %s to be seen; map: %v", p, pm)
		}
	}
	nulls := []string{"/b", "/c/d", "/e/0"}
	for _, p := range nulls {
		if !pm.WasNull(p) {
			t.Fatalf("expected %s to be null; map: %v", p, pm)
		}
	}
	for _, p := range []string{"/a", "/c", "/e", "/e/1", "/f", "/"} {
		if pm.WasNull(p) {
			t.Fatalf("expected %s to not be null", p)
		}
	}
	if pm.Seen("/missing") {
		t.Fatalf("expected absent key to be unseen")
	}
}

func TestScanJSON_EscapesPointerTokens(t *testing.T) {
	// RFC 6901: a literal "a/b" key must not collide with the nested path a.b
	pm, err := jsonopt.ScanJSON([]byte(`{"a/b":null,"a":{"b":1},"x~y":null}`))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !pm.Seen("/a~1b") || !pm.WasNull("/a~1b") {
		t.Fatalf("expected escaped /a~1b to be seen and null, got %v", pm)
	}
	if !pm.Seen("/a/b") || pm.WasNull("/a/b") {
		t.Fatalf("expected nested /a/b to be seen and not null, got %v", pm)
	}
	if !pm.Seen("/x~0y") || !pm.WasNull("/x~0y") {
		t.Fatalf("expected escaped /x~0y to be seen and null, got %v", pm)
	}
}

func TestScanJSON_RootScalarAndReader(t *testing.T) {
	pm, err := jsonopt.ScanJSONReader(strings.NewReader(`null`))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !pm.Seen("/") || !pm.WasNull("/") {
		t.Fatalf("expected root null to be seen and null, got %v", pm)
	}

	pm, err = jsonopt.ScanJSON([]byte(`"hello"`))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !pm.Seen("/") || pm.WasNull("/") {
		t.Fatalf("expected root scalar to be seen and not null, got %v", pm)
	}
}

func TestScanJSON_InvalidInput(t *testing.T) {
	if _, err := jsonopt.ScanJSON([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestScanJSON_MatchesOptionalDecode(t *testing.T) {
	// the scanner and an Optional-typed field must answer the presence
	// question identically
	data := []byte(`{"value":null}`)
	pm, err := jsonopt.ScanJSON(data)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	o, err := jsonopt.Field[string](data, "value")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if pm.Seen("/value") != o.IsPresent() {
		t.Fatalf("scanner and Optional disagree on presence")
	}
	if pm.WasNull("/value") != o.IsNull() {
		t.Fatalf("scanner and Optional disagree on nullness")
	}
}
