package rdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSortedOutput(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("http://x/b"), RDFSLabel, NewLiteral("second"))
	g.Add(IRI("http://x/a"), RDFSLabel, NewLiteral("first"))
	g.Add(IRI("http://x/a"), RDFType, WOSPublication)

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	for i := 1; i < len(lines); i++ {
		if lines[i-1] >= lines[i] {
			t.Errorf("output not sorted: %q before %q", lines[i-1], lines[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	g := NewGraph()
	g.Add(D("pub-1"), RDFType, WOSPublication)
	g.Add(D("pub-1"), RDFSLabel, NewLiteral(`Quotes " and \ backslash`))
	g.Add(D("pub-1"), WOSCitationCount, NewIntLiteral(42))
	g.Add(D("date-1"), VIVODateTime, NewDateTimeLiteral("2016-03-01T00:00:00"))

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !g.Equal(parsed) {
		t.Errorf("round trip mismatch:\nwrote %v\nread %v", g.Triples(), parsed.Triples())
	}
}

func TestParseSkipsBlanksAndComments(t *testing.T) {
	in := "# header\n\n<http://x/s> <http://x/p> <http://x/o> .\n"
	g, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing dot", `<http://x/s> <http://x/p> "v"`},
		{"bare subject", `s <http://x/p> "v" .`},
		{"blank node object", `<http://x/s> <http://x/p> _:b0 .`},
		{"language tag", `<http://x/s> <http://x/p> "v"@en .`},
		{"unterminated literal", `<http://x/s> <http://x/p> "v .`},
		{"unterminated iri", `<http://x/s> <http://x/p .`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.in)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.in)
			}
		})
	}
}

func TestParseDatatype(t *testing.T) {
	in := `<http://x/s> <http://x/p> "7"^^<http://www.w3.org/2001/XMLSchema#integer> .`
	g, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Triple{
		Subject:   IRI("http://x/s"),
		Predicate: IRI("http://x/p"),
		Object:    NewIntLiteral(7),
	}
	if !g.Has(want) {
		t.Errorf("missing %s, got %v", want.NTriples(), g.Triples())
	}
}
