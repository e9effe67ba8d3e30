/*
Package dsl provides a Go DSL for programmatically constructing Reactome source graphs.

It lets tests and tools describe pathways, reactions and their participants with a
type-safe, fluent builder instead of hand-writing the domain structs or keeping
fixture files around. Containment (eventOf) is derived from the pathways' child
lists when the graph is built.

Example usage:

	b := dsl.New()
	b.Compartment(70101, "cytosol", "0005829")

	b.Simple(113592, "ATP").In(70101).Ref("ChEBI", "15422")
	b.Protein(58283, "RAF1").In(70101).Ref("UniProt", "P04049")

	b.Reaction(5672965, "RAF1 phosphorylation").
		Input(113592, 58283).
		Output(58283).
		Catalyst(58283, &domain.GOTerm{Accession: "0004672"})

	b.Pathway(5673001, "RAF/MAP kinase cascade").
		Events(5672965).
		Summary("The RAF/MAP kinase cascade ...")

	graph, err := b.Build()
*/
package dsl
