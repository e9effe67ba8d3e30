// Package xmlw writes indented XML with literal prefixed names, the way
// SBML and RDF/XML documents spell them.
package xmlw

import (
	"encoding/xml"
	"io"
)

// Writer wraps an xml.Encoder. The first error sticks; later calls are no-ops.
type Writer struct {
	enc *xml.Encoder
	err error
}

// New returns a Writer indenting by two spaces.
func New(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &Writer{enc: enc}
}

// Attr builds an attribute. The qname may carry a prefix ("rdf:about").
func Attr(qname, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: qname}, Value: value}
}

// Start opens an element.
func (w *Writer) Start(qname string, attrs ...xml.Attr) {
	w.token(xml.StartElement{Name: xml.Name{Local: qname}, Attr: attrs})
}

// End closes an element.
func (w *Writer) End(qname string) {
	w.token(xml.EndElement{Name: xml.Name{Local: qname}})
}

// Empty writes an element without content.
func (w *Writer) Empty(qname string, attrs ...xml.Attr) {
	w.Start(qname, attrs...)
	w.End(qname)
}

// Text writes an element holding escaped character data.
func (w *Writer) Text(qname, text string, attrs ...xml.Attr) {
	w.Start(qname, attrs...)
	w.token(xml.CharData(text))
	w.End(qname)
}

func (w *Writer) token(t xml.Token) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(t)
}

// Close flushes buffered output and returns the first error.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	return w.enc.Flush()
}
