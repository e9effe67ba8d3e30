// Package sbmlxml renders sbml documents as SBML Level 3 XML.
package sbmlxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/sbmlexport/internal/xmlw"
	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// Header is the XML declaration written before the sbml element.
const Header = "<?xml version='1.0' encoding='utf-8' standalone='no'?>\n"

const (
	nsCore    = "http://www.sbml.org/sbml/level3/version1/core"
	nsXHTML   = "http://www.w3.org/1999/xhtml"
	nsRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsBQBiol  = "http://biomodels.net/biology-qualifiers/"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsVCard   = "http://www.w3.org/2001/vcard-rdf/3.0#"
)

// Encode writes doc to w. A nil document is an error.
func Encode(w io.Writer, doc *sbml.Document) error {
	if doc == nil {
		return fmt.Errorf("nil sbml document")
	}
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}

	e := &encoder{w: xmlw.New(w)}
	e.document(doc)
	if err := e.w.Close(); err != nil {
		return fmt.Errorf("failed to encode sbml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal renders doc into memory.
func Marshal(doc *sbml.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders doc into path, replacing any existing file.
func WriteFile(path string, doc *sbml.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

type encoder struct {
	w *xmlw.Writer
}

func attr(name, value string) xml.Attr { return xmlw.Attr(name, value) }

func boolAttr(name string, v bool) xml.Attr { return attr(name, strconv.FormatBool(v)) }

// sbase returns the identity attributes shared by every element, in order.
func sbase(s *sbml.SBase) []xml.Attr {
	var attrs []xml.Attr
	if s.ID != "" {
		attrs = append(attrs, attr("id", s.ID))
	}
	if s.MetaID != "" {
		attrs = append(attrs, attr("metaid", s.MetaID))
	}
	if s.Name != "" {
		attrs = append(attrs, attr("name", s.Name))
	}
	return attrs
}

func sboAttr(attrs []xml.Attr, term int) []xml.Attr {
	if term == sbml.SBOUnset || term < 0 {
		return attrs
	}
	return append(attrs, attr("sboTerm", fmt.Sprintf("SBO:%07d", term)))
}

func (e *encoder) document(doc *sbml.Document) {
	level, version := doc.Level, doc.Version
	if level == 0 {
		level, version = sbml.Level, sbml.Version
	}
	e.w.Start("sbml",
		attr("xmlns", nsCore),
		attr("level", strconv.Itoa(level)),
		attr("version", strconv.Itoa(version)),
	)
	if len(doc.Annotation) > 0 {
		e.w.Start("annotation")
		for _, p := range doc.Annotation {
			e.w.Text("p", p, attr("xmlns", nsXHTML))
		}
		e.w.End("annotation")
	}
	if doc.Model != nil {
		e.model(doc.Model)
	}
	e.w.End("sbml")
}

func (e *encoder) model(m *sbml.Model) {
	e.w.Start("model", sboAttr(sbase(&m.SBase), m.SBOTerm)...)
	e.notesAndAnnotation(&m.SBase, m.History)

	if len(m.Compartments) > 0 {
		e.w.Start("listOfCompartments")
		for _, c := range m.Compartments {
			attrs := append([]xml.Attr{boolAttr("constant", c.Constant)}, sbase(&c.SBase)...)
			e.element("compartment", &c.SBase, sboAttr(attrs, c.SBOTerm))
		}
		e.w.End("listOfCompartments")
	}

	if len(m.Species) > 0 {
		e.w.Start("listOfSpecies")
		for _, s := range m.Species {
			attrs := []xml.Attr{
				boolAttr("boundaryCondition", s.BoundaryCondition),
				attr("compartment", s.Compartment),
				boolAttr("constant", s.Constant),
				boolAttr("hasOnlySubstanceUnits", s.HasOnlySubstanceUnits),
			}
			attrs = append(attrs, sbase(&s.SBase)...)
			e.element("species", &s.SBase, sboAttr(attrs, s.SBOTerm))
		}
		e.w.End("listOfSpecies")
	}

	if len(m.Reactions) > 0 {
		e.w.Start("listOfReactions")
		for _, r := range m.Reactions {
			e.reaction(r)
		}
		e.w.End("listOfReactions")
	}

	e.w.End("model")
}

func (e *encoder) reaction(r *sbml.Reaction) {
	attrs := append([]xml.Attr{boolAttr("fast", r.Fast)}, sbase(&r.SBase)...)
	attrs = append(attrs, boolAttr("reversible", r.Reversible))
	e.w.Start("reaction", sboAttr(attrs, r.SBOTerm)...)
	e.notesAndAnnotation(&r.SBase, nil)

	e.references("listOfReactants", r.Reactants)
	e.references("listOfProducts", r.Products)
	if len(r.Modifiers) > 0 {
		e.w.Start("listOfModifiers")
		for _, ref := range r.Modifiers {
			attrs := sboAttr(sbase(&ref.SBase), ref.SBOTerm)
			attrs = append(attrs, attr("species", ref.Species))
			e.element("modifierSpeciesReference", &ref.SBase, attrs)
		}
		e.w.End("listOfModifiers")
	}

	e.w.End("reaction")
}

func (e *encoder) references(list string, refs []*sbml.SpeciesReference) {
	if len(refs) == 0 {
		return
	}
	e.w.Start(list)
	for _, ref := range refs {
		attrs := append([]xml.Attr{boolAttr("constant", ref.Constant)}, sbase(&ref.SBase)...)
		attrs = sboAttr(attrs, ref.SBOTerm)
		attrs = append(attrs, attr("species", ref.Species))
		e.element("speciesReference", &ref.SBase, attrs)
	}
	e.w.End(list)
}

// element writes a leaf SBML element with its notes and annotation.
func (e *encoder) element(name string, s *sbml.SBase, attrs []xml.Attr) {
	e.w.Start(name, attrs...)
	e.notesAndAnnotation(s, nil)
	e.w.End(name)
}

func (e *encoder) notesAndAnnotation(s *sbml.SBase, h *sbml.History) {
	if s.HasNotes() {
		e.w.Start("notes")
		e.w.Text("p", s.Notes, attr("xmlns", nsXHTML))
		e.w.End("notes")
	}

	history := !h.IsEmpty()
	if s.MetaID == "" || (len(s.CVTerms) == 0 && !history) {
		return
	}

	ns := []xml.Attr{attr("xmlns:bqbiol", nsBQBiol)}
	if history {
		ns = append(ns, attr("xmlns:dc", nsDC), attr("xmlns:dcterms", nsDCTerms))
	}
	ns = append(ns, attr("xmlns:rdf", nsRDF))
	if history {
		ns = append(ns, attr("xmlns:vCard", nsVCard))
	}

	e.w.Start("annotation")
	e.w.Start("rdf:RDF", ns...)
	e.w.Start("rdf:Description", attr("rdf:about", "#"+s.MetaID))
	if history {
		e.history(h)
	}
	for _, term := range s.CVTerms {
		if len(term.Resources) == 0 {
			continue
		}
		qname := term.Qualifier.String()
		e.w.Start(qname)
		e.w.Start("rdf:Bag")
		for _, res := range term.Resources {
			e.w.Empty("rdf:li", attr("rdf:resource", res))
		}
		e.w.End("rdf:Bag")
		e.w.End(qname)
	}
	e.w.End("rdf:Description")
	e.w.End("rdf:RDF")
	e.w.End("annotation")
}

func (e *encoder) history(h *sbml.History) {
	if len(h.Creators) > 0 {
		e.w.Start("dc:creator")
		e.w.Start("rdf:Bag")
		for _, c := range h.Creators {
			e.creator(c)
		}
		e.w.End("rdf:Bag")
		e.w.End("dc:creator")
	}
	if h.Created != nil {
		e.date("dcterms:created", *h.Created)
	}
	for _, m := range h.Modified {
		if m != nil {
			e.date("dcterms:modified", *m)
		}
	}
}

func (e *encoder) creator(c sbml.Creator) {
	resource := attr("rdf:parseType", "Resource")
	e.w.Start("rdf:li", resource)
	if c.FamilyName != "" || c.GivenName != "" {
		e.w.Start("vCard:N", resource)
		if c.FamilyName != "" {
			e.w.Text("vCard:Family", c.FamilyName)
		}
		if c.GivenName != "" {
			e.w.Text("vCard:Given", c.GivenName)
		}
		e.w.End("vCard:N")
	}
	if c.Email != "" {
		e.w.Text("vCard:EMAIL", c.Email)
	}
	if c.Organisation != "" {
		e.w.Start("vCard:ORG", resource)
		e.w.Text("vCard:Orgname", c.Organisation)
		e.w.End("vCard:ORG")
	}
	e.w.End("rdf:li")
}

// W3CDTF is the dcterms date layout.
const W3CDTF = time.RFC3339

func (e *encoder) date(qname string, t time.Time) {
	e.w.Start(qname, attr("rdf:parseType", "Resource"))
	e.w.Text("dcterms:W3CDTF", t.UTC().Format(W3CDTF))
	e.w.End(qname)
}
