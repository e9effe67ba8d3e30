package compiler

import (
	"testing"

	"github.com/aretw0/sbmlexport/internal/dto"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_WeakTypes(t *testing.T) {
	raw := map[string]any{
		"dbId":        "109581",
		"displayName": "Apoptosis",
		"schemaClass": "Pathway",
		"hasEvent":    []any{float64(1), 2, "3"},
		"created": map[string]any{
			"dateTime": "2004-02-05 00:00:00",
			"author":   []any{map[string]any{"surname": "Gillespie", "firstname": "Marc"}},
		},
	}

	rec, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(109581), rec.DBID)
	assert.Equal(t, []int64{1, 2, 3}, rec.HasEvent)
	require.NotNil(t, rec.Created)
	assert.Equal(t, "Gillespie", rec.Created.Author[0].Surname)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(map[string]any{"dbId": "not-a-number"})
	assert.Error(t, err)
}

func TestDecodeBundle(t *testing.T) {
	b, err := DecodeBundle(map[string]any{
		"dbVersion": 59,
		"records": []any{
			map[string]any{"dbId": 1, "schemaClass": "Compartment", "accession": "0005829"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 59, b.DBVersion)
	require.Len(t, b.Records, 1)
	assert.Equal(t, "0005829", b.Records[0].Accession)
}

func TestCompile(t *testing.T) {
	pubmed := 12345
	records := []dto.Record{
		{DBID: 70101, DisplayName: "cytosol", SchemaClass: "Compartment", Accession: "0005829"},
		{DBID: 48887, DisplayName: "Homo sapiens", SchemaClass: "Species", TaxID: "9606"},
		{DBID: 113592, DisplayName: "ATP", SchemaClass: "SimpleEntity", Compartment: []int64{70101},
			ReferenceEntity: &dto.Reference{DatabaseName: "ChEBI", Identifier: "15422"},
			CrossReference:  []dto.Reference{{DatabaseName: "COMPOUND", Identifier: "C00002"}}},
		{DBID: 58283, DisplayName: "RAF1", SchemaClass: "EntityWithAccessionedSequence", Compartment: []int64{70101},
			ReferenceEntity:    &dto.Reference{DatabaseName: "UniProt", Identifier: "P04049"},
			HasModifiedResidue: []dto.Residue{{SchemaClass: "TranslationalModification", PsiMod: &dto.Reference{DatabaseName: "MOD", Identifier: "00046"}}}},
		{DBID: 9001, DisplayName: "RAF1:ATP", SchemaClass: "Complex", HasComponent: []int64{113592, 58283}},
		{DBID: 9002, DisplayName: "set", SchemaClass: "DefinedSet", HasMember: []int64{58283}},
		{DBID: 10, DisplayName: "RAF1 binds ATP", SchemaClass: "Reaction",
			Input: []int64{113592, 58283}, Output: []int64{9001},
			CatalystActivity:      []dto.CatalystActivity{{PhysicalEntity: 58283, Activity: &dto.GOTerm{Accession: "0004672", EcNumber: "2.7.11.1"}}},
			NegativelyRegulatedBy: []dto.Regulation{{Regulator: 9002, Explanation: "blocks"}},
			LiteratureReference:   []dto.Publication{{PubMedIdentifier: &pubmed}, {SchemaClass: "URL", Title: "site"}}},
		{DBID: 100, DisplayName: "Signalling", SchemaClass: "TopLevelPathway", HasEvent: []int64{10}, Species: []int64{48887}},
	}

	g, err := Compile(59, records)
	require.NoError(t, err)
	assert.Equal(t, 59, g.DBVersion)
	assert.Equal(t, len(records), g.Len())

	p, err := g.Pathway(100)
	require.NoError(t, err)
	assert.Equal(t, []domain.DBID{10}, p.HasEvent)

	e, ok := g.Event(10)
	require.True(t, ok)
	r := e.(*domain.ReactionLikeEvent)
	assert.Equal(t, []domain.DBID{100}, r.EventOf, "containers should be linked from hasEvent")
	assert.Equal(t, domain.DBID(58283), r.CatalystActivities[0].PhysicalEntity)
	assert.Equal(t, "blocks", r.NegativelyRegulatedBy[0].Explanation)

	id, ok := r.LiteratureReferences[0].PubMed()
	assert.True(t, ok)
	assert.Equal(t, 12345, id)
	_, ok = r.LiteratureReferences[1].PubMed()
	assert.False(t, ok)

	pe, ok := g.Entity(113592)
	require.True(t, ok)
	se := pe.(*domain.SimpleEntity)
	assert.Equal(t, "15422", se.ReferenceEntity.Identifier)
	assert.Equal(t, "C00002", se.CrossReferences[0].Identifier)

	pe, _ = g.Entity(58283)
	ewas := pe.(*domain.EntityWithAccessionedSequence)
	require.Len(t, ewas.ModifiedResidues, 1)
	assert.Equal(t, "00046", ewas.ModifiedResidues[0].PsiMod.Identifier)

	pe, _ = g.Entity(9001)
	assert.Equal(t, []domain.DBID{113592, 58283}, domain.Children(pe))
	pe, _ = g.Entity(9002)
	assert.IsType(t, &domain.DefinedSet{}, pe)

	assert.Len(t, g.PathwaysForSpecies(48887), 1)
}

func TestCompile_DBInfo(t *testing.T) {
	g, err := Compile(0, []dto.Record{
		{SchemaClass: "DBInfo", Version: 73},
		{DBID: 1, SchemaClass: "Pathway"},
	})
	require.NoError(t, err)
	assert.Equal(t, 73, g.DBVersion)
	assert.Equal(t, 1, g.Len())
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []dto.Record
		target  error
	}{
		{
			name:    "unknown class",
			records: []dto.Record{{DBID: 1, SchemaClass: "Ghost"}},
			target:  domain.ErrUnknownSchemaClass,
		},
		{
			name:    "missing id",
			records: []dto.Record{{SchemaClass: "Pathway"}},
		},
		{
			name:    "duplicate id",
			records: []dto.Record{{DBID: 1, SchemaClass: "Pathway"}, {DBID: 1, SchemaClass: "Compartment"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(0, tt.records)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
