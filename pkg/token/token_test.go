package token

import "testing"

func TestLookupKeywords(t *testing.T) {
	for word, kind := range Keywords {
		if got := Lookup(word); got != kind {
			t.Fatalf("Lookup(%q) = %s, want %s", word, got, kind)
		}
	}
	if got := Lookup("Build"); got != Identifier {
		t.Fatalf("keywords are case sensitive, got %s", got)
	}
	if got := Lookup("frames"); got != Identifier {
		t.Fatalf("expected identifier for %q, got %s", "frames", got)
	}
}

func TestTokenString(t *testing.T) {
	if s := (Token{Kind: Newline, Text: "\n"}).String(); s != "Newline" {
		t.Fatalf("unexpected newline rendering %q", s)
	}
	if s := (Token{Kind: EOF}).String(); s != "EOF" {
		t.Fatalf("unexpected EOF rendering %q", s)
	}
	if s := (Token{Kind: Identifier, Text: "beam"}).String(); s != "beam" {
		t.Fatalf("unexpected identifier rendering %q", s)
	}
	if s := Kind(99).String(); s != "Kind(99)" {
		t.Fatalf("unexpected unknown kind rendering %q", s)
	}
}
