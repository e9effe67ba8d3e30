package annotation

import (
	"testing"
	"time"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/sbml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceURI(t *testing.T) {
	tests := []struct {
		db, acc string
		want    string
	}{
		{"uniprot", "P12345", "http://identifiers.org/uniprot/P12345"},
		{"UniProt", "P12345", "http://identifiers.org/uniprot/P12345"},
		{"pubmed", "9642267", "http://identifiers.org/pubmed/9642267"},
		{"ec-code", "2.7.11.1", "http://identifiers.org/ec-code/2.7.11.1"},
		{"EMBL", "AF389115", "http://identifiers.org/ena.embl/AF389115"},
		{"kegg", "C00002", "http://identifiers.org/kegg.compound/C00002"},
		{"MOD", "00068", "http://identifiers.org/psimod/MOD:00068"},
		{"go", "GO:0005886", "http://identifiers.org/go/GO:GO:0005886"},
		{"reactome", "R-HSA-168275", "http://identifiers.org/reactome/REACTOME:R-HSA-168275"},
		{"foo", "X1", "http://identifiers.org/foo/FOO:X1"},
	}
	for _, tt := range tests {
		t.Run(tt.db+"/"+tt.acc, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceURI(tt.db, tt.acc))
		})
	}
}

func TestBuilder_OrderAndDedup(t *testing.T) {
	b := NewBuilder()
	b.AddResource("reactome", sbml.BQBIs, "R-1")
	b.AddResource("pubmed", sbml.BQBIsDescribedBy, "1")
	b.AddResource("chebi", sbml.BQBIs, "15422")
	b.AddResource("reactome", sbml.BQBIs, "R-1")
	b.AddResource("pubmed", sbml.BQBIsDescribedBy, "1")

	terms := b.Build()
	require.Len(t, terms, 2)
	assert.Equal(t, sbml.BQBIs, terms[0].Qualifier)
	assert.Equal(t, []string{
		"http://identifiers.org/reactome/REACTOME:R-1",
		"http://identifiers.org/chebi/CHEBI:15422",
	}, terms[0].Resources)
	assert.Equal(t, sbml.BQBIsDescribedBy, terms[1].Qualifier)
	assert.Len(t, terms[1].Resources, 1)
	assert.Equal(t, 3, b.Len())
}

func TestBuilder_EmptyBuildsNil(t *testing.T) {
	assert.Nil(t, NewBuilder().Build())
}

func TestBuilder_SkipsEmptyAccession(t *testing.T) {
	b := NewBuilder()
	b.AddResource("reactome", sbml.BQBIs, "")
	b.AddResource("chebi", sbml.BQBIs, "  ")
	assert.Nil(t, b.Build())
	assert.Equal(t, 0, b.Len())
}

func TestProvenance(t *testing.T) {
	at := time.Date(2026, 10, 14, 15, 4, 0, 0, time.UTC)
	assert.Equal(t,
		"SBML generated from Reactome version 59 on 10/14/26 3:04 PM using sbmlexport version 1.0.0.",
		Provenance(59, at, "1.0.0"))
	assert.Equal(t,
		"SBML generated from Reactome on 10/14/26 3:04 PM using sbmlexport version 1.0.0.",
		Provenance(0, at, "1.0.0"))
}

func pubmed(id int) domain.Publication {
	return domain.Publication{SchemaClass: domain.ClassLiteratureReference, PubMedID: &id}
}

func fixture() *domain.Graph {
	g := domain.NewGraph()
	g.AddEntity(&domain.EntityWithAccessionedSequence{
		EntityBase: domain.EntityBase{
			DBID: 1, StID: "R-HSA-1", SchemaClass: domain.ClassEWAS,
			InferredTo:   []domain.DBID{5},
			InferredFrom: []domain.DBID{6},
		},
		ReferenceEntity: &domain.ReferenceEntity{DatabaseName: "UniProt", Identifier: "P09496"},
		ModifiedResidues: []domain.ModifiedResidue{
			{SchemaClass: domain.ClassTranslationalModification, PsiMod: &domain.DatabaseIdentifier{DatabaseName: "MOD", Identifier: "00046"}},
			{SchemaClass: "FragmentInsertionModification", PsiMod: &domain.DatabaseIdentifier{DatabaseName: "MOD", Identifier: "99999"}},
			{SchemaClass: domain.ClassTranslationalModification},
		},
	})
	g.AddEntity(&domain.SimpleEntity{
		EntityBase:      domain.EntityBase{DBID: 2, StID: "R-ALL-2", SchemaClass: domain.ClassSimpleEntity},
		ReferenceEntity: &domain.ReferenceEntity{DatabaseName: "ChEBI", Identifier: "15422"},
		CrossReferences: []domain.DatabaseIdentifier{
			{DatabaseName: "PubChem", Identifier: "123"},
			{DatabaseName: "COMPOUND", Identifier: "C00002"},
		},
	})
	g.AddEntity(&domain.Complex{
		EntityBase: domain.EntityBase{DBID: 3, StID: "R-HSA-3", SchemaClass: domain.ClassComplex},
		Components: []domain.DBID{1, 2, 4},
	})
	g.AddEntity(&domain.Complex{
		EntityBase: domain.EntityBase{DBID: 4, StID: "R-HSA-4", SchemaClass: domain.ClassComplex},
		Components: []domain.DBID{7},
	})
	g.AddEntity(&domain.EntityWithAccessionedSequence{
		EntityBase:      domain.EntityBase{DBID: 5, StID: "R-MMU-5"},
		ReferenceEntity: &domain.ReferenceEntity{DatabaseName: "UniProt", Identifier: "Q1"},
	})
	g.AddEntity(&domain.EntityWithAccessionedSequence{
		EntityBase:      domain.EntityBase{DBID: 6, StID: "R-RNO-6"},
		ReferenceEntity: &domain.ReferenceEntity{DatabaseName: "UniProt", Identifier: "Q2"},
	})
	g.AddEntity(&domain.EntityWithAccessionedSequence{
		EntityBase:      domain.EntityBase{DBID: 7, StID: "R-HSA-7"},
		ReferenceEntity: &domain.ReferenceEntity{DatabaseName: "EMBL", Identifier: "AF389115"},
	})
	return g
}

func TestAnnotator_SpeciesEWAS(t *testing.T) {
	g := fixture()
	a := NewAnnotator(g, nil)
	pe, _ := g.Entity(1)

	terms := a.Species(pe)
	require.Len(t, terms, 3)
	assert.Equal(t, sbml.CVTerm{Qualifier: sbml.BQBIs, Resources: []string{
		"http://identifiers.org/reactome/REACTOME:R-HSA-1",
		"http://identifiers.org/uniprot/P09496",
	}}, terms[0])
	assert.Equal(t, sbml.CVTerm{Qualifier: sbml.BQBIsHomologTo, Resources: []string{
		"http://identifiers.org/reactome/REACTOME:R-MMU-5",
		"http://identifiers.org/reactome/REACTOME:R-RNO-6",
	}}, terms[1])
	assert.Equal(t, sbml.CVTerm{Qualifier: sbml.BQBHasVersion, Resources: []string{
		"http://identifiers.org/psimod/MOD:00046",
	}}, terms[2])
}

func TestAnnotator_SpeciesSimpleEntity(t *testing.T) {
	g := fixture()
	pe, _ := g.Entity(2)

	terms := NewAnnotator(g, nil).Species(pe)
	require.Len(t, terms, 1)
	assert.Equal(t, []string{
		"http://identifiers.org/reactome/REACTOME:R-ALL-2",
		"http://identifiers.org/chebi/CHEBI:15422",
		"http://identifiers.org/kegg.compound/C00002",
	}, terms[0].Resources)
}

func TestAnnotator_SpeciesWithoutStID(t *testing.T) {
	g := fixture()
	g.AddEntity(&domain.SimpleEntity{
		EntityBase:      domain.EntityBase{DBID: 8, SchemaClass: domain.ClassSimpleEntity},
		ReferenceEntity: &domain.ReferenceEntity{DatabaseName: "ChEBI", Identifier: "16761"},
	})
	pe, _ := g.Entity(8)

	terms := NewAnnotator(g, nil).Species(pe)
	require.Len(t, terms, 1)
	assert.Equal(t, []string{"http://identifiers.org/chebi/CHEBI:16761"}, terms[0].Resources)
}

func TestAnnotator_SpeciesComplexIsFlatHasPart(t *testing.T) {
	g := fixture()
	pe, _ := g.Entity(3)

	terms := NewAnnotator(g, nil).Species(pe)
	require.Len(t, terms, 2)
	assert.Equal(t, sbml.BQBIs, terms[0].Qualifier)
	assert.Equal(t, sbml.BQBHasPart, terms[1].Qualifier)
	// nested components are descended into, homologs of parts are not recorded
	assert.Equal(t, []string{
		"http://identifiers.org/uniprot/P09496",
		"http://identifiers.org/chebi/CHEBI:15422",
		"http://identifiers.org/kegg.compound/C00002",
		"http://identifiers.org/ena.embl/AF389115",
	}, terms[1].Resources)
}

func TestAnnotator_CyclicComplexTerminates(t *testing.T) {
	g := domain.NewGraph()
	g.AddEntity(&domain.Complex{EntityBase: domain.EntityBase{DBID: 1, StID: "R-1"}, Components: []domain.DBID{2}})
	g.AddEntity(&domain.Complex{EntityBase: domain.EntityBase{DBID: 2, StID: "R-2"}, Components: []domain.DBID{1}})
	pe, _ := g.Entity(1)

	terms := NewAnnotator(g, nil).Species(pe)
	require.Len(t, terms, 1)
}

func TestAnnotator_Sets(t *testing.T) {
	g := fixture()
	g.AddEntity(&domain.DefinedSet{EntitySet: domain.EntitySet{
		EntityBase: domain.EntityBase{DBID: 10, StID: "R-HSA-10"},
		Members:    []domain.DBID{5, 6},
	}})
	g.AddEntity(&domain.Polymer{EntityBase: domain.EntityBase{DBID: 11, StID: "R-HSA-11"}, RepeatedUnits: []domain.DBID{2}})
	g.AddEntity(&domain.OtherEntity{EntityBase: domain.EntityBase{DBID: 12, StID: "R-HSA-12"}})

	a := NewAnnotator(g, nil)
	set, _ := g.Entity(10)
	terms := a.Species(set)
	require.Len(t, terms, 2)
	assert.Equal(t, []string{"http://identifiers.org/uniprot/Q1", "http://identifiers.org/uniprot/Q2"}, terms[1].Resources)

	poly, _ := g.Entity(11)
	terms = a.Species(poly)
	require.Len(t, terms, 2)
	assert.Equal(t, sbml.BQBHasPart, terms[1].Qualifier)

	other, _ := g.Entity(12)
	assert.Len(t, a.Species(other), 1)
}

func TestAnnotator_Reaction(t *testing.T) {
	tests := []struct {
		name string
		rle  *domain.ReactionLikeEvent
		want []sbml.CVTerm
	}{
		{
			name: "biological process preferred",
			rle: &domain.ReactionLikeEvent{
				EventBase:           domain.EventBase{StID: "R-HSA-9", LiteratureReferences: []domain.Publication{pubmed(0), {SchemaClass: "URL"}}},
				GoBiologicalProcess: &domain.GOTerm{Accession: "0019065"},
				CatalystActivities: []domain.CatalystActivity{
					{Activity: &domain.GOTerm{Accession: "0004672", EcNumber: "2.7.11.1"}},
					{Activity: &domain.GOTerm{Accession: "0004674"}},
				},
			},
			want: []sbml.CVTerm{
				{Qualifier: sbml.BQBIs, Resources: []string{
					"http://identifiers.org/reactome/REACTOME:R-HSA-9",
					"http://identifiers.org/go/GO:0019065",
					"http://identifiers.org/ec-code/2.7.11.1",
				}},
				{Qualifier: sbml.BQBIsDescribedBy, Resources: []string{"http://identifiers.org/pubmed/0"}},
			},
		},
		{
			name: "falls back to first catalyst activity",
			rle: &domain.ReactionLikeEvent{
				EventBase: domain.EventBase{StID: "R-HSA-9"},
				CatalystActivities: []domain.CatalystActivity{
					{Activity: &domain.GOTerm{Accession: "0004672"}},
					{},
				},
			},
			want: []sbml.CVTerm{
				{Qualifier: sbml.BQBIs, Resources: []string{
					"http://identifiers.org/reactome/REACTOME:R-HSA-9",
					"http://identifiers.org/go/GO:0004672",
				}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAnnotator(domain.NewGraph(), nil).Reaction(tt.rle))
		})
	}
}

func TestAnnotator_ModelAndEvents(t *testing.T) {
	a := NewAnnotator(domain.NewGraph(), nil)
	p := &domain.Pathway{EventBase: domain.EventBase{StID: "R-HSA-1", LiteratureReferences: []domain.Publication{pubmed(7)}}}

	terms := a.Model(p)
	require.Len(t, terms, 2)
	assert.Equal(t, "http://identifiers.org/reactome/REACTOME:R-HSA-1", terms[0].Resources[0])

	events := []domain.Event{
		&domain.ReactionLikeEvent{EventBase: domain.EventBase{StID: "R-HSA-2", LiteratureReferences: []domain.Publication{pubmed(7), pubmed(8)}}},
		&domain.ReactionLikeEvent{EventBase: domain.EventBase{StID: "R-HSA-3", LiteratureReferences: []domain.Publication{pubmed(8)}}},
	}
	terms = a.Events(events)
	require.Len(t, terms, 1)
	assert.Equal(t, sbml.BQBIsDescribedBy, terms[0].Qualifier)
	assert.Equal(t, []string{"http://identifiers.org/pubmed/7", "http://identifiers.org/pubmed/8"}, terms[0].Resources)

	assert.Equal(t, []sbml.CVTerm{{Qualifier: sbml.BQBIs, Resources: []string{"http://identifiers.org/go/GO:0005886"}}},
		a.Compartment(&domain.Compartment{Accession: "0005886"}))
}
