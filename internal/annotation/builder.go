// Package annotation accumulates MIRIAM cross-references for output elements
// and turns source database references into identifiers.org URIs.
package annotation

import (
	"strings"

	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// BaseURI prefixes every resource.
const BaseURI = "http://identifiers.org/"

// namespaces rendered as "<ns>/<accession>" rather than "<ns>/<NS>:<accession>".
var shortForm = map[string]bool{
	"uniprot": true,
	"pubmed":  true,
	"ec-code": true,
}

// renamed maps source database names onto identifiers.org namespaces.
// The boolean selects the short form.
var renamed = map[string]struct {
	namespace string
	short     bool
}{
	"embl": {"ena.embl", true},
	"kegg": {"kegg.compound", true},
	"mod":  {"psimod", false},
}

// ResourceURI renders a database reference. Matching on the database name is
// case-insensitive. The long form keeps the upper-cased source name as the
// prefix, so "mod" becomes ".../psimod/MOD:<acc>".
func ResourceURI(database, accession string) string {
	lower := strings.ToLower(database)
	upper := strings.ToUpper(database)

	short := shortForm[lower]
	if r, ok := renamed[lower]; ok {
		lower, short = r.namespace, r.short
	}
	if short {
		return BaseURI + lower + "/" + accession
	}
	return BaseURI + lower + "/" + upper + ":" + accession
}

// Builder collects resources per qualifier for one element.
// Qualifiers render in first-insertion order and each resource appears once
// per qualifier.
type Builder struct {
	order     []sbml.Qualifier
	resources map[sbml.Qualifier][]string
	seen      map[sbml.Qualifier]map[string]struct{}
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		resources: make(map[sbml.Qualifier][]string),
		seen:      make(map[sbml.Qualifier]map[string]struct{}),
	}
}

// AddResource records database:accession under the qualifier. An empty
// accession cannot be resolved and is skipped.
func (b *Builder) AddResource(database string, q sbml.Qualifier, accession string) {
	if strings.TrimSpace(accession) == "" {
		return
	}
	b.add(q, ResourceURI(database, accession))
}

func (b *Builder) add(q sbml.Qualifier, uri string) {
	set, ok := b.seen[q]
	if !ok {
		set = make(map[string]struct{})
		b.seen[q] = set
		b.order = append(b.order, q)
	}
	if _, dup := set[uri]; dup {
		return
	}
	set[uri] = struct{}{}
	b.resources[q] = append(b.resources[q], uri)
}

// Len returns the number of recorded resources across all qualifiers.
func (b *Builder) Len() int {
	n := 0
	for _, r := range b.resources {
		n += len(r)
	}
	return n
}

// Build returns one CV term per qualifier.
func (b *Builder) Build() []sbml.CVTerm {
	if len(b.order) == 0 {
		return nil
	}
	terms := make([]sbml.CVTerm, 0, len(b.order))
	for _, q := range b.order {
		res := make([]string, len(b.resources[q]))
		copy(res, b.resources[q])
		terms = append(terms, sbml.CVTerm{Qualifier: q, Resources: res})
	}
	return terms
}
