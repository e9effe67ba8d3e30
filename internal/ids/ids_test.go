package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedIDs(t *testing.T) {
	assert.Equal(t, "pathway_168275", Model(168275))
	assert.Equal(t, "reaction_168285", Reaction(168285))
	assert.Equal(t, "species_188954", Species(188954))
	assert.Equal(t, "compartment_876", Compartment(876))
}

func TestRoleLink(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleReactant, "speciesreference_1_input_2"},
		{RoleProduct, "speciesreference_1_output_2"},
		{RoleCatalyst, "modifierspeciesreference_1_catalyst_2"},
		{RolePositiveRegulator, "modifierspeciesreference_1_positiveregulator_2"},
		{RoleNegativeRegulator, "modifierspeciesreference_1_negativeregulator_2"},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, RoleLink(tt.role, 1, 2))
		})
	}
}

func TestRole_IsModifier(t *testing.T) {
	assert.False(t, RoleReactant.IsModifier())
	assert.False(t, RoleProduct.IsModifier())
	assert.True(t, RoleCatalyst.IsModifier())
	assert.True(t, RoleNegativeRegulator.IsModifier())
}

func TestMetaIDs_StartAtZero(t *testing.T) {
	var m MetaIDs
	assert.Equal(t, "metaid_0", m.Next())
	assert.Equal(t, "metaid_1", m.Next())
	assert.Equal(t, 2, m.Issued())

	// Independent counters do not share state.
	var other MetaIDs
	assert.Equal(t, "metaid_0", other.Next())
}

func TestRegistry_Claim(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.Claim("species_1"))
	assert.False(t, r.Claim("species_1"))
	assert.True(t, r.Has("species_1"))
	assert.False(t, r.Has("species_2"))
	assert.Equal(t, 1, r.Len())
}
