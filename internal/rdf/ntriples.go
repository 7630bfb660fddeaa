package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write serializes the graph as N-Triples in stable sorted order.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.Triples() {
		if _, err := bw.WriteString(t.NTriples() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads N-Triples produced by Write (and by VIVO's CONSTRUCT
// responses): IRI subjects and predicates, IRI or literal objects with
// optional datatype. Blank nodes and language tags are not part of the
// mapped data and are rejected.
func Parse(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		g.AddTriple(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseLine(line string) (Triple, error) {
	rest := line
	subj, rest, err := parseIRI(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	pred, rest, err := parseIRI(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	obj, rest, err := parseObject(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	rest = strings.TrimSpace(rest)
	if rest != "." {
		return Triple{}, fmt.Errorf("expected terminating '.', got %q", rest)
	}
	return Triple{Subject: subj, Predicate: pred, Object: obj}, nil
}

func parseIRI(s string) (IRI, string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return "", s, fmt.Errorf("expected '<', got %q", truncate(s))
	}
	end := strings.Index(s, ">")
	if end < 0 {
		return "", s, fmt.Errorf("unterminated IRI in %q", truncate(s))
	}
	return IRI(s[1:end]), s[end+1:], nil
}

func parseObject(s string) (Term, string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") {
		iri, rest, err := parseIRI(s)
		return iri, rest, err
	}
	if !strings.HasPrefix(s, "\"") {
		return nil, s, fmt.Errorf("expected IRI or literal, got %q", truncate(s))
	}
	// Find the closing unescaped quote.
	end := -1
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, s, fmt.Errorf("unterminated literal in %q", truncate(s))
	}
	value, err := strconv.Unquote(s[:end+1])
	if err != nil {
		return nil, s, fmt.Errorf("unquoting literal: %w", err)
	}
	rest := s[end+1:]
	lit := Literal{Value: value}
	if strings.HasPrefix(rest, "^^") {
		dt, after, err := parseIRI(rest[2:])
		if err != nil {
			return nil, rest, fmt.Errorf("datatype: %w", err)
		}
		lit.Datatype = dt
		rest = after
	} else if strings.HasPrefix(rest, "@") {
		return nil, rest, fmt.Errorf("language-tagged literals are not supported")
	}
	return lit, rest, nil
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
