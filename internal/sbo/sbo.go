// Package sbo maps source variants and reaction roles to Systems Biology
// Ontology terms.
package sbo

import (
	"fmt"

	"github.com/aretw0/sbmlexport/internal/ids"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// http://www.ebi.ac.uk/sbo/main/SBO:<code>
const (
	PhysicalCompartment = 290
	MaterialEntity      = 240
	SimpleChemical      = 247
	Macromolecule       = 297
	NonCovalentComplex  = 253

	Reactant           = 10
	Product            = 11
	Catalyst           = 13
	EssentialActivator = 461
	Inhibitor          = 20
)

// Compartment returns the term of any compartment.
func Compartment(*domain.Compartment) int {
	return PhysicalCompartment
}

// Entity returns the term of a physical entity. known is false for a variant
// the table does not cover; the term is then sbml.SBOUnset. Entity sets are
// known but deliberately unset.
func Entity(pe domain.PhysicalEntity) (term int, known bool) {
	switch pe.(type) {
	case *domain.SimpleEntity:
		return SimpleChemical, true
	case *domain.EntityWithAccessionedSequence, *domain.GenomeEncodedEntity:
		return Macromolecule, true
	case *domain.Complex:
		return NonCovalentComplex, true
	case *domain.CandidateSet, *domain.DefinedSet, *domain.OpenSet:
		return sbml.SBOUnset, true
	case *domain.Polymer, *domain.OtherEntity:
		return MaterialEntity, true
	}
	return sbml.SBOUnset, false
}

// Role returns the term of a reaction role-link.
func Role(r ids.Role) int {
	switch r {
	case ids.RoleReactant:
		return Reactant
	case ids.RoleProduct:
		return Product
	case ids.RoleCatalyst:
		return Catalyst
	case ids.RolePositiveRegulator:
		return EssentialActivator
	case ids.RoleNegativeRegulator:
		return Inhibitor
	}
	return sbml.SBOUnset
}

// Valid reports whether a term can be rendered.
func Valid(term int) bool {
	return term >= 0 && term <= 9999999
}

// URI renders a term as "SBO:0000290".
func URI(term int) string {
	return fmt.Sprintf("SBO:%07d", term)
}
