package annotation

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// Namespaces used for Reactome-derived references.
const (
	NamespaceReactome = "reactome"
	NamespaceGO       = "go"
	NamespaceChEBI    = "chebi"
	NamespaceKEGG     = "kegg"
	NamespacePubMed   = "pubmed"
	NamespaceEC       = "ec-code"
)

// Annotator derives the CV terms of each kind of output element from the
// source graph.
type Annotator struct {
	graph  *domain.Graph
	logger *slog.Logger
}

// NewAnnotator creates an annotator reading from g. A nil logger discards.
func NewAnnotator(g *domain.Graph, logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Annotator{graph: g, logger: logger}
}

// Model annotates a model built from a pathway.
func (a *Annotator) Model(p *domain.Pathway) []sbml.CVTerm {
	b := NewBuilder()
	b.AddResource(NamespaceReactome, sbml.BQBIs, p.StID)
	addPublications(b, p.LiteratureReferences)
	return b.Build()
}

// Events annotates a model built from events without a common parent:
// only the publications of every event are recorded.
func (a *Annotator) Events(events []domain.Event) []sbml.CVTerm {
	b := NewBuilder()
	for _, e := range events {
		addPublications(b, e.Base().LiteratureReferences)
	}
	return b.Build()
}

// Reaction annotates a reaction.
func (a *Annotator) Reaction(r *domain.ReactionLikeEvent) []sbml.CVTerm {
	b := NewBuilder()
	b.AddResource(NamespaceReactome, sbml.BQBIs, r.StID)
	addGOTerm(b, r)
	addECNumbers(b, r)
	addPublications(b, r.LiteratureReferences)
	return b.Build()
}

// Compartment annotates a compartment with its GO accession.
func (a *Annotator) Compartment(c *domain.Compartment) []sbml.CVTerm {
	b := NewBuilder()
	b.AddResource(NamespaceGO, sbml.BQBIs, c.Accession)
	return b.Build()
}

// Species annotates a species with its own Reactome id followed by the
// variant-specific references.
func (a *Annotator) Species(pe domain.PhysicalEntity) []sbml.CVTerm {
	b := NewBuilder()
	b.AddResource(NamespaceReactome, sbml.BQBIs, pe.Base().StID)
	a.entity(b, pe, sbml.BQBIs, true, nil)
	return b.Build()
}

// entity adds the references of pe under q. Only the top-level call
// (recurse) records homologs and modifications; nested parts are always
// recorded under hasPart. path holds the composites currently being
// descended so a self-containing structure stops instead of looping.
func (a *Annotator) entity(b *Builder, pe domain.PhysicalEntity, q sbml.Qualifier, recurse bool, path map[domain.DBID]bool) {
	switch v := pe.(type) {
	case *domain.SimpleEntity:
		if v.ReferenceEntity != nil {
			b.AddResource(NamespaceChEBI, q, v.ReferenceEntity.Identifier)
		}
		if kegg := keggReference(v.CrossReferences); kegg != "" {
			b.AddResource(NamespaceKEGG, q, kegg)
		}
	case *domain.EntityWithAccessionedSequence:
		if v.ReferenceEntity != nil {
			b.AddResource(v.ReferenceEntity.DatabaseName, q, v.ReferenceEntity.Identifier)
		}
		if !recurse {
			return
		}
		for _, id := range v.InferredTo {
			a.homolog(b, id)
		}
		for _, id := range v.InferredFrom {
			a.homolog(b, id)
		}
		for _, mod := range v.ModifiedResidues {
			if mod.SchemaClass == domain.ClassTranslationalModification && mod.PsiMod != nil {
				b.AddResource(mod.PsiMod.DatabaseName, sbml.BQBHasVersion, mod.PsiMod.Identifier)
			}
		}
	case *domain.Complex, *domain.CandidateSet, *domain.DefinedSet, *domain.OpenSet, *domain.Polymer:
		id := pe.Base().DBID
		if path[id] {
			a.logger.Warn("cyclic composite entity, not descending", "dbId", id)
			return
		}
		if path == nil {
			path = make(map[domain.DBID]bool)
		}
		path[id] = true
		for _, child := range domain.Children(pe) {
			part, ok := a.graph.Entity(child)
			if !ok {
				a.logger.Debug("composite part not in graph", "dbId", id, "part", child)
				continue
			}
			a.entity(b, part, sbml.BQBHasPart, false, path)
		}
		delete(path, id)
	case *domain.GenomeEncodedEntity, *domain.OtherEntity:
		// no further references
	default:
		a.logger.Warn("unrecognised physical entity", "dbId", pe.Base().DBID, "class", pe.Base().SchemaClass)
	}
}

func (a *Annotator) homolog(b *Builder, id domain.DBID) {
	inf, ok := a.graph.Entity(id)
	if !ok {
		a.logger.Debug("inferred entity not in graph", "dbId", id)
		return
	}
	b.AddResource(NamespaceReactome, sbml.BQBIsHomologTo, inf.Base().StID)
}

func addPublications(b *Builder, pubs []domain.Publication) {
	for _, p := range pubs {
		if id, ok := p.PubMed(); ok {
			b.AddResource(NamespacePubMed, sbml.BQBIsDescribedBy, strconv.Itoa(id))
		}
	}
}

// addGOTerm prefers the event's own biological process and falls back to the
// molecular function of the first catalyst activity.
func addGOTerm(b *Builder, r *domain.ReactionLikeEvent) {
	if r.GoBiologicalProcess != nil {
		b.AddResource(NamespaceGO, sbml.BQBIs, r.GoBiologicalProcess.Accession)
		return
	}
	if len(r.CatalystActivities) > 0 {
		if act := r.CatalystActivities[0].Activity; act != nil {
			b.AddResource(NamespaceGO, sbml.BQBIs, act.Accession)
		}
	}
}

func addECNumbers(b *Builder, r *domain.ReactionLikeEvent) {
	for _, cat := range r.CatalystActivities {
		if cat.Activity != nil && cat.Activity.EcNumber != "" {
			b.AddResource(NamespaceEC, sbml.BQBIs, cat.Activity.EcNumber)
		}
	}
}

func keggReference(refs []domain.DatabaseIdentifier) string {
	for _, ref := range refs {
		if ref.DatabaseName == domain.DatabaseCompound {
			return ref.Identifier
		}
	}
	return ""
}
