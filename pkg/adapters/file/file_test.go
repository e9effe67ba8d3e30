package file_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/sbmlexport/internal/dto"
	"github.com/aretw0/sbmlexport/pkg/adapters/file"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle_Contract(t *testing.T) {
	src, err := file.Open(filepath.Join("testdata", "apoptosis.yaml"))
	require.NoError(t, err)

	ports.RunGraphSourceContract(t, src, ports.SourceFixture{
		Pathway:   109581,
		Species:   48887,
		DBVersion: 59,
	})
}

func TestBundle_Contents(t *testing.T) {
	src, err := file.Open(filepath.Join("testdata", "apoptosis.yaml"))
	require.NoError(t, err)

	g, err := src.Graph(context.Background(), 109581)
	require.NoError(t, err)

	p, err := g.Pathway(109581)
	require.NoError(t, err)
	require.NotNil(t, p.Created)
	assert.Equal(t, "2004-02-05 00:00:00", p.Created.DateTime)
	assert.Equal(t, []string{"Ontario Institute for Cancer Research"}, p.Created.Authors[0].Affiliations[0].Names)

	e, _ := g.Event(5672965)
	r := e.(*domain.ReactionLikeEvent)
	require.Len(t, r.CatalystActivities, 1)
	assert.Equal(t, "3.6.1.3", r.CatalystActivities[0].Activity.EcNumber)
	id, ok := r.LiteratureReferences[0].PubMed()
	assert.True(t, ok)
	assert.Equal(t, 10102814, id)
}

func TestBundle_JSONList(t *testing.T) {
	src, err := file.Open(filepath.Join("testdata", "apoptosis.json"))
	require.NoError(t, err)

	v, err := src.DBVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	ids, err := src.PathwaysForSpecies(context.Background(), 48887)
	require.NoError(t, err)
	assert.Equal(t, []domain.DBID{109581}, ids)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "  \n"},
		{"scalar root", "42"},
		{"bad yaml", "records: [unclosed"},
		{"bad record", "- dbId: nope\n  schemaClass: Pathway"},
		{"unknown class", "records:\n  - dbId: 1\n    schemaClass: Ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := file.Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := file.Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, file.Encode(&buf, dto.Bundle{
		DBVersion: 12,
		Records:   []dto.Record{{DBID: 1, SchemaClass: "Pathway", DisplayName: "p"}},
	}))

	g, err := file.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, g.DBVersion)
	_, err = g.Pathway(1)
	assert.NoError(t, err)
}

func TestSink_Contract(t *testing.T) {
	sink := file.NewSink(filepath.Join(t.TempDir(), "out"))
	ports.RunOutputSinkContract(t, sink, sink.Read)

	entries, err := os.ReadDir(sink.BasePath)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files should not be left behind")
	assert.Equal(t, "109581.xml", entries[0].Name())
}

func TestSink_RejectsPaths(t *testing.T) {
	sink := file.NewSink(t.TempDir())
	for _, name := range []string{"", "..", "../escape.xml", "a/b.xml"} {
		assert.Error(t, sink.Write(context.Background(), name, []byte("x")), name)
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := file.NewWriterSink(&buf)
	require.NoError(t, sink.Write(context.Background(), "a.xml", []byte("<a/>\n")))
	require.NoError(t, sink.Write(context.Background(), "b.xml", []byte("<b/>\n")))
	assert.Equal(t, "<a/>\n<b/>\n", buf.String())
}
