package xmlw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Indents(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Start("rdf:RDF", Attr("xmlns:rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"))
	w.Empty("rdf:li", Attr("rdf:resource", "http://identifiers.org/chebi/CHEBI:15422"))
	w.Text("dc:title", "a < b & c")
	w.End("rdf:RDF")
	require.NoError(t, w.Close())

	assert.Equal(t, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:li rdf:resource="http://identifiers.org/chebi/CHEBI:15422"></rdf:li>
  <dc:title>a &lt; b &amp; c</dc:title>
</rdf:RDF>`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_StickyError(t *testing.T) {
	w := New(failingWriter{})
	w.Start("a")
	w.End("a")
	w.Empty("b")
	assert.Error(t, w.Close())
}

func TestWriter_Mismatch(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Start("a")
	w.End("b")
	assert.Error(t, w.Close())
}
