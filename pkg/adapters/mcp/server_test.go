package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/sbmlexport"
	"github.com/aretw0/sbmlexport/pkg/adapters/memory"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/dsl"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	b := dsl.New()
	b.Compartment(70101, "cytosol", "0005829")
	b.Simple(113592, "ATP").In(70101)
	b.Reaction(1, "first").Input(113592)
	b.Reaction(2, "second").Output(113592)
	b.Pathway(10, "top").StID("R-HSA-10").Events(1, 2)

	exp, err := sbmlexport.New("",
		sbmlexport.WithSource(memory.NewSource(b.MustBuild())),
		sbmlexport.WithTestMode(true),
	)
	require.NoError(t, err)
	return NewServer(exp, "1.0.0", nil)
}

func TestExportPathway(t *testing.T) {
	s := newServer(t)
	resp, err := s.handleExportPathway(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"pathway_id": "10"})
	require.NoError(t, err)
	assert.Equal(t, "10", resp.ID)
	assert.Equal(t, "sbml", resp.Format)
	assert.Contains(t, resp.Model, `id="pathway_10"`)

	resp, err = s.handleExportPathway(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"pathway_id": float64(10), "format": "biopax3"})
	require.NoError(t, err)
	assert.Contains(t, resp.Model, `rdf:ID="r1"`)

	_, err = s.handleExportPathway(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"pathway_id": "1"})
	assert.ErrorIs(t, err, domain.ErrNotAPathway)
}

func TestExportEvents(t *testing.T) {
	s := newServer(t)
	resp, err := s.handleExportEvents(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"events": "1, 2"})
	require.NoError(t, err)
	assert.Equal(t, "no_parent_pathway", resp.ID)

	_, err = s.handleExportEvents(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"events": "1,99"})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestInferParent(t *testing.T) {
	s := newServer(t)
	resp, err := s.handleInferParent(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"events": "[1,2]"})
	require.NoError(t, err)
	assert.Equal(t, ParentResponse{Found: true, DBID: 10, StID: "R-HSA-10", DisplayName: "top"}, resp)
}

func TestIDsArg(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []domain.DBID
		err  bool
	}{
		{"comma list", "1,2, 3", []domain.DBID{1, 2, 3}, false},
		{"json array", "[4,5]", []domain.DBID{4, 5}, false},
		{"number", float64(7), []domain.DBID{7}, false},
		{"array", []interface{}{"8", float64(9)}, []domain.DBID{8, 9}, false},
		{"not a number", "1,x", nil, true},
		{"empty", " , ", nil, true},
		{"wrong type", true, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idsArg(map[string]interface{}{"events": tt.raw}, "events")
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := idsArg(map[string]interface{}{}, "events")
	assert.ErrorContains(t, err, "missing events")
}
