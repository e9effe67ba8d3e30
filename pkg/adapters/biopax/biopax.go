// Package biopax renders a skeletal BioPAX Level 3 model of a pathway: one
// BiochemicalReaction per event below it, without participants.
package biopax

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aretw0/sbmlexport/internal/xmlw"
	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Header is the XML declaration written before rdf:RDF.
const Header = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// DefaultXMLBase is the xml:base of built models.
const DefaultXMLBase = "http://"

const (
	nsXSD    = "http://www.w3.org/2001/XMLSchema#"
	nsOWL    = "http://www.w3.org/2002/07/owl#"
	nsRDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsBioPAX = "http://www.biopax.org/release/biopax-level3.owl#"
)

// Model is a BioPAX document: an xml:base and the local ids of its reactions.
type Model struct {
	XMLBase   string
	Reactions []string
}

// Build walks the pathway's events depth first, pathways included, and
// numbers one reaction per visit as r0, r1, ... Numbering restarts per call.
func Build(g *domain.Graph, p *domain.Pathway) *Model {
	m := &Model{XMLBase: DefaultXMLBase}
	if p == nil {
		return m
	}
	onPath := map[domain.DBID]bool{p.DBID: true}
	m.walk(g, p, onPath)
	return m
}

func (m *Model) walk(g *domain.Graph, p *domain.Pathway, onPath map[domain.DBID]bool) {
	for _, id := range p.HasEvent {
		e, ok := g.Event(id)
		if !ok {
			continue
		}
		m.Reactions = append(m.Reactions, "r"+strconv.Itoa(len(m.Reactions)))
		child, ok := e.(*domain.Pathway)
		if !ok || onPath[child.DBID] {
			continue
		}
		onPath[child.DBID] = true
		m.walk(g, child, onPath)
		delete(onPath, child.DBID)
	}
}

// Encode writes m as OWL RDF/XML.
func Encode(w io.Writer, m *Model) error {
	if m == nil {
		return fmt.Errorf("nil biopax model")
	}
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}

	x := xmlw.New(w)
	root := []xml.Attr{
		xmlw.Attr("xmlns:xsd", nsXSD),
		xmlw.Attr("xmlns:owl", nsOWL),
		xmlw.Attr("xmlns:rdf", nsRDF),
		xmlw.Attr("xmlns:bp", nsBioPAX),
	}
	if m.XMLBase != "" {
		root = append(root, xmlw.Attr("xml:base", m.XMLBase))
	}

	x.Start("rdf:RDF", root...)
	x.Start("owl:Ontology", xmlw.Attr("rdf:about", ""))
	x.Empty("owl:imports", xmlw.Attr("rdf:resource", nsBioPAX))
	x.End("owl:Ontology")
	for _, id := range m.Reactions {
		x.Empty("bp:BiochemicalReaction", xmlw.Attr("rdf:ID", id))
	}
	x.End("rdf:RDF")
	if err := x.Close(); err != nil {
		return fmt.Errorf("failed to encode biopax: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal renders m into memory.
func Marshal(m *Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders m into path.
func WriteFile(path string, m *Model) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
