// Package rdf provides the triple data model used throughout rap-etl.
//
// Entities are identified by IRIs and described by (subject, predicate,
// object) statements collected into Graphs. Graphs have set semantics:
// union, difference and equality are plain set operations, which is what
// makes reconciliation against the store a simple diff.
package rdf

import (
	"fmt"
	"strings"
)

// Term is an RDF term appearing in the object position of a triple.
// Subjects and predicates are always IRIs.
type Term interface {
	// NTriples returns the canonical N-Triples form of the term.
	NTriples() string
}

// IRI is a resource identifier.
type IRI string

// NTriples returns the term in angle brackets.
func (i IRI) NTriples() string {
	return "<" + string(i) + ">"
}

// LocalName returns the final path segment of the IRI.
func (i IRI) LocalName() string {
	s := string(i)
	if idx := strings.LastIndexAny(s, "/#"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// Literal is a typed literal value. An empty Datatype means a plain
// string literal.
type Literal struct {
	Value    string
	Datatype IRI
}

// NTriples returns the quoted, escaped literal with its datatype, if any.
func (l Literal) NTriples() string {
	if l.Datatype == "" {
		return fmt.Sprintf("%q", escapeLiteral(l.Value))
	}
	return fmt.Sprintf("%q^^<%s>", escapeLiteral(l.Value), string(l.Datatype))
}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// NewIntLiteral returns an xsd:integer literal.
func NewIntLiteral(value int) Literal {
	return Literal{Value: fmt.Sprintf("%d", value), Datatype: XSDInteger}
}

// NewDateTimeLiteral returns an xsd:dateTime literal.
func NewDateTimeLiteral(value string) Literal {
	return Literal{Value: value, Datatype: XSDDateTime}
}

// escapeLiteral applies N-Triples escaping beyond what %q provides.
// %q already escapes quotes, backslashes and control characters in a
// form N-Triples accepts.
func escapeLiteral(s string) string {
	return s
}

// Triple is a single (subject, predicate, object) statement.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

// NTriples returns the statement as one N-Triples line, without the
// trailing newline.
func (t Triple) NTriples() string {
	return t.Subject.NTriples() + " " + t.Predicate.NTriples() + " " + t.Object.NTriples() + " ."
}
