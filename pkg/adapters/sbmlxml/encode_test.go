package sbmlxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/sbmlexport/pkg/sbml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err, "output should be well formed XML")
	}
}

func sample() *sbml.Document {
	created := time.Date(2004, 2, 5, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2010, 6, 1, 12, 30, 0, 0, time.UTC)

	m := sbml.NewModel("pathway_109581", "Apoptosis")
	m.MetaID = "metaid_0"
	m.Notes = "Derived from a Reactome Pathway.\nApoptosis is a distinct form of cell death."
	m.CVTerms = []sbml.CVTerm{{Qualifier: sbml.BQBIs, Resources: []string{"http://identifiers.org/reactome/R-HSA-109581"}}}
	m.History = &sbml.History{
		Creators: []sbml.Creator{{FamilyName: "Gillespie", GivenName: "Marc", Organisation: "OICR"}},
		Created:  &created,
		Modified: []*time.Time{nil, &modified},
	}

	c := &sbml.Compartment{SBase: sbml.SBase{ID: "compartment_70101", MetaID: "metaid_3", Name: "cytosol", SBOTerm: 290}, Constant: true}
	c.CVTerms = []sbml.CVTerm{{Qualifier: sbml.BQBIs, Resources: []string{"http://identifiers.org/go/GO:0005829"}}}
	m.AddCompartment(c)

	m.AddSpecies(&sbml.Species{
		SBase:       sbml.SBase{ID: "species_113592", MetaID: "metaid_2", Name: "ATP", SBOTerm: 247, Notes: "Derived from a Reactome SimpleEntity."},
		Compartment: "compartment_70101",
	})

	r := &sbml.Reaction{SBase: sbml.SBase{ID: "reaction_5672965", MetaID: "metaid_1", Name: "ATP hydrolysis", SBOTerm: sbml.SBOUnset}}
	r.Reactants = []*sbml.SpeciesReference{{SBase: sbml.SBase{ID: "speciesreference_5672965_input_113592", SBOTerm: 10}, Species: "species_113592", Constant: true}}
	r.Modifiers = []*sbml.ModifierSpeciesReference{{SBase: sbml.SBase{ID: "modifierspeciesreference_5672965_catalyst_58283", SBOTerm: 13}, Species: "species_58283"}}
	m.AddReaction(r)

	doc := sbml.NewDocument()
	doc.Model = m
	doc.Annotation = []string{"SBML generated from Reactome version 59 on 10/14/26 9:30 AM using sbmlexport version 1.2.3."}
	return doc
}

func TestEncode_Document(t *testing.T) {
	data, err := Marshal(sample())
	require.NoError(t, err)
	wellFormed(t, data)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, Header+`<sbml xmlns="http://www.sbml.org/sbml/level3/version1/core" level="3" version="1">`))
	assert.Contains(t, out, `  <annotation>
    <p xmlns="http://www.w3.org/1999/xhtml">SBML generated from Reactome version 59 on 10/14/26 9:30 AM using sbmlexport version 1.2.3.</p>
  </annotation>`)
	assert.Contains(t, out, `<model id="pathway_109581" metaid="metaid_0" name="Apoptosis">`)
	assert.Contains(t, out, "<p xmlns=\"http://www.w3.org/1999/xhtml\">Derived from a Reactome Pathway.\nApoptosis is a distinct form of cell death.</p>")
	assert.Contains(t, out, `<rdf:RDF xmlns:bqbiol="http://biomodels.net/biology-qualifiers/" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:vCard="http://www.w3.org/2001/vcard-rdf/3.0#">`)
	assert.Contains(t, out, `<rdf:Description rdf:about="#metaid_0">`)
	assert.Contains(t, out, `<vCard:Family>Gillespie</vCard:Family>`)
	assert.Contains(t, out, `<vCard:Orgname>OICR</vCard:Orgname>`)
	assert.Contains(t, out, `<dcterms:W3CDTF>2004-02-05T00:00:00Z</dcterms:W3CDTF>`)
	assert.Equal(t, 1, strings.Count(out, "dcterms:modified rdf:parseType"), "nil modification dates are dropped")
	assert.Contains(t, out, `<rdf:li rdf:resource="http://identifiers.org/reactome/R-HSA-109581"></rdf:li>`)

	assert.Contains(t, out, `<compartment constant="true" id="compartment_70101" metaid="metaid_3" name="cytosol" sboTerm="SBO:0000290">`)
	assert.Contains(t, out, `<species boundaryCondition="false" compartment="compartment_70101" constant="false" hasOnlySubstanceUnits="false" id="species_113592" metaid="metaid_2" name="ATP" sboTerm="SBO:0000247">`)
	assert.Contains(t, out, `<reaction fast="false" id="reaction_5672965" metaid="metaid_1" name="ATP hydrolysis" reversible="false">`)
	assert.Contains(t, out, `<speciesReference constant="true" id="speciesreference_5672965_input_113592" sboTerm="SBO:0000010" species="species_113592"></speciesReference>`)
	assert.Contains(t, out, `<modifierSpeciesReference id="modifierspeciesreference_5672965_catalyst_58283" sboTerm="SBO:0000013" species="species_58283"></modifierSpeciesReference>`)
	assert.NotContains(t, out, "listOfProducts")

	order := []string{"<annotation>", "<model ", "<notes>", "<listOfCompartments>", "<listOfSpecies>", "<listOfReactions>", "<listOfReactants>", "<listOfModifiers>"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(out, tag)
		require.Greater(t, idx, last, "%s out of order", tag)
		last = idx
	}
}

func TestEncode_CVTermsWithoutHistory(t *testing.T) {
	doc := sbml.NewDocument()
	m := sbml.NewModel("pathway_1", "P")
	m.MetaID = "metaid_0"
	m.CVTerms = []sbml.CVTerm{
		{Qualifier: sbml.BQBIs, Resources: []string{"http://identifiers.org/reactome/R-HSA-1"}},
		{Qualifier: sbml.BQBIsDescribedBy},
	}
	doc.Model = m

	data, err := Marshal(doc)
	require.NoError(t, err)
	wellFormed(t, data)
	out := string(data)

	assert.Contains(t, out, `<rdf:RDF xmlns:bqbiol="http://biomodels.net/biology-qualifiers/" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">`)
	assert.NotContains(t, out, "vCard")
	assert.NotContains(t, out, "bqbiol:isDescribedBy", "empty terms are skipped")
}

func TestEncode_EmptyDocument(t *testing.T) {
	data, err := Marshal(sbml.NewDocument())
	require.NoError(t, err)
	assert.Equal(t, Header+`<sbml xmlns="http://www.sbml.org/sbml/level3/version1/core" level="3" version="1"></sbml>`+"\n", string(data))
}

func TestEncode_EscapesText(t *testing.T) {
	doc := sbml.NewDocument()
	m := sbml.NewModel("pathway_1", `A & "B"`)
	m.Notes = "x > y"
	doc.Model = m

	data, err := Marshal(doc)
	require.NoError(t, err)
	wellFormed(t, data)
	assert.Contains(t, string(data), `name="A &amp; &#34;B&#34;"`)
	assert.Contains(t, string(data), "x &gt; y")
}

func TestEncode_NoMetaIDNoAnnotation(t *testing.T) {
	doc := sbml.NewDocument()
	m := sbml.NewModel("pathway_1", "P")
	m.CVTerms = []sbml.CVTerm{{Qualifier: sbml.BQBIs, Resources: []string{"x"}}}
	doc.Model = m

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "rdf:RDF")
}

func TestEncode_Nil(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "109581.xml")
	require.NoError(t, WriteFile(path, sample()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	wellFormed(t, data)

	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "x.xml"), sample()))
}
