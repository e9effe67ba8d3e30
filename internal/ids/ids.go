// Package ids derives the output identifiers of an export from source keys.
//
// Derived identifiers are pure functions of their inputs. Opaque metaids come
// from a counter owned by a single builder, and Registry tracks which derived
// identifiers a document has already issued.
package ids

import (
	"fmt"
	"strconv"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Sentinel identity of a model built from events without a unique parent pathway.
const (
	NoParentModelID   = "no_parent_pathway"
	NoParentModelName = "No parent pathway detected"
)

// Role is the part a physical entity plays in a reaction.
type Role int

const (
	RoleReactant Role = iota
	RoleProduct
	RoleCatalyst
	RolePositiveRegulator
	RoleNegativeRegulator
)

func (r Role) String() string {
	switch r {
	case RoleReactant:
		return "reactant"
	case RoleProduct:
		return "product"
	case RoleCatalyst:
		return "catalyst"
	case RolePositiveRegulator:
		return "pos_regulator"
	case RoleNegativeRegulator:
		return "neg_regulator"
	}
	return "unknown"
}

// IsModifier reports whether links of this role are modifier species references.
func (r Role) IsModifier() bool {
	return r == RoleCatalyst || r == RolePositiveRegulator || r == RoleNegativeRegulator
}

// Model returns the model id of a pathway.
func Model(id domain.DBID) string { return "pathway_" + format(id) }

// Reaction returns the reaction id of an event.
func Reaction(id domain.DBID) string { return "reaction_" + format(id) }

// Species returns the species id of a physical entity.
func Species(id domain.DBID) string { return "species_" + format(id) }

// Compartment returns the compartment id of a source compartment.
func Compartment(id domain.DBID) string { return "compartment_" + format(id) }

// RoleLink returns the id of the link between an event and an entity in a role.
func RoleLink(role Role, event, entity domain.DBID) string {
	var prefix, tag string
	switch role {
	case RoleReactant:
		prefix, tag = "speciesreference", "input"
	case RoleProduct:
		prefix, tag = "speciesreference", "output"
	case RoleCatalyst:
		prefix, tag = "modifierspeciesreference", "catalyst"
	case RolePositiveRegulator:
		prefix, tag = "modifierspeciesreference", "positiveregulator"
	case RoleNegativeRegulator:
		prefix, tag = "modifierspeciesreference", "negativeregulator"
	default:
		prefix, tag = "speciesreference", "unknown"
	}
	return fmt.Sprintf("%s_%d_%s_%d", prefix, event, tag, entity)
}

func format(id domain.DBID) string {
	return strconv.FormatInt(int64(id), 10)
}

// MetaIDs hands out "metaid_<n>" tags in creation order, starting at 0.
// The zero value is ready to use.
type MetaIDs struct {
	next int
}

// Next returns the next metaid.
func (m *MetaIDs) Next() string {
	id := "metaid_" + strconv.Itoa(m.next)
	m.next++
	return id
}

// Issued returns how many metaids have been handed out.
func (m *MetaIDs) Issued() int { return m.next }

// Registry records the identifiers a document has issued.
type Registry struct {
	seen map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Claim records id and reports whether it was new.
func (r *Registry) Claim(id string) bool {
	if _, ok := r.seen[id]; ok {
		return false
	}
	r.seen[id] = struct{}{}
	return true
}

// Has reports whether id has been claimed.
func (r *Registry) Has(id string) bool {
	_, ok := r.seen[id]
	return ok
}

// Len returns the number of claimed identifiers.
func (r *Registry) Len() int { return len(r.seen) }
