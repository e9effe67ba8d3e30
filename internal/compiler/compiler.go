// Package compiler turns loosely typed source records into a domain graph.
package compiler

import (
	"fmt"

	"github.com/aretw0/sbmlexport/internal/dto"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Decode converts decoded frontmatter, YAML or JSON into a Record.
// Numbers given as strings or floats are accepted.
func Decode(raw any) (dto.Record, error) {
	var rec dto.Record
	if err := decode(raw, &rec); err != nil {
		return dto.Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}

// DecodeBundle converts a decoded bundle document.
func DecodeBundle(raw any) (dto.Bundle, error) {
	var b dto.Bundle
	if err := decode(raw, &b); err != nil {
		return dto.Bundle{}, fmt.Errorf("failed to decode bundle: %w", err)
	}
	return b, nil
}

func decode(raw, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Compile builds a graph from records. Ids must be unique across every
// kind. A DBInfo record overrides dbVersion. Containers named by hasEvent
// are linked into eventOf afterwards.
func Compile(dbVersion int, records []dto.Record) (*domain.Graph, error) {
	g := domain.NewGraph()
	g.DBVersion = dbVersion

	for i, rec := range records {
		if rec.SchemaClass == domain.ClassDBInfo {
			g.DBVersion = rec.Version
			continue
		}
		if rec.DBID == 0 {
			return nil, fmt.Errorf("record %d (%q) has no dbId", i, rec.DisplayName)
		}
		id := domain.DBID(rec.DBID)
		if g.Has(id) {
			return nil, fmt.Errorf("duplicate dbId %d", id)
		}
		if err := add(g, rec); err != nil {
			return nil, err
		}
	}

	g.LinkContainers()
	return g, nil
}

func add(g *domain.Graph, rec dto.Record) error {
	class := rec.SchemaClass
	switch {
	case domain.IsPathwayClass(class) || domain.IsReactionClass(class):
		e, err := Event(rec)
		if err != nil {
			return err
		}
		g.AddEvent(e)
	case class == domain.ClassCompartment:
		g.AddCompartment(&domain.Compartment{
			DBID:        domain.DBID(rec.DBID),
			DisplayName: rec.DisplayName,
			Accession:   rec.Accession,
		})
	case class == domain.ClassSpecies:
		g.AddSpecies(&domain.Species{
			DBID:        domain.DBID(rec.DBID),
			DisplayName: rec.DisplayName,
			TaxID:       rec.TaxID,
		})
	default:
		pe, err := Entity(rec)
		if err != nil {
			return err
		}
		g.AddEntity(pe)
	}
	return nil
}

// Event converts a pathway or reaction-like record.
func Event(rec dto.Record) (domain.Event, error) {
	base := eventBase(rec)
	switch {
	case domain.IsPathwayClass(rec.SchemaClass):
		return &domain.Pathway{EventBase: base, HasEvent: ids(rec.HasEvent)}, nil
	case domain.IsReactionClass(rec.SchemaClass):
		r := &domain.ReactionLikeEvent{
			EventBase:           base,
			Input:               ids(rec.Input),
			Output:              ids(rec.Output),
			GoBiologicalProcess: goTerm(rec.GoBiologicalProcess),
		}
		for _, ca := range rec.CatalystActivity {
			r.CatalystActivities = append(r.CatalystActivities, domain.CatalystActivity{
				DBID:           domain.DBID(ca.DBID),
				PhysicalEntity: domain.DBID(ca.PhysicalEntity),
				Activity:       goTerm(ca.Activity),
			})
		}
		r.PositivelyRegulatedBy = regulations(rec.PositivelyRegulatedBy)
		r.NegativelyRegulatedBy = regulations(rec.NegativelyRegulatedBy)
		return r, nil
	}
	return nil, fmt.Errorf("record %d: event class %q: %w", rec.DBID, rec.SchemaClass, domain.ErrUnknownSchemaClass)
}

// Entity converts a physical entity record.
func Entity(rec dto.Record) (domain.PhysicalEntity, error) {
	base := domain.EntityBase{
		DBID:         domain.DBID(rec.DBID),
		StID:         rec.StID,
		DisplayName:  rec.DisplayName,
		SchemaClass:  rec.SchemaClass,
		Compartments: ids(rec.Compartment),
		InferredTo:   ids(rec.InferredTo),
		InferredFrom: ids(rec.InferredFrom),
	}
	switch rec.SchemaClass {
	case domain.ClassSimpleEntity:
		se := &domain.SimpleEntity{EntityBase: base, ReferenceEntity: reference(rec.ReferenceEntity)}
		for _, x := range rec.CrossReference {
			se.CrossReferences = append(se.CrossReferences, domain.DatabaseIdentifier(x))
		}
		return se, nil
	case domain.ClassEWAS:
		ewas := &domain.EntityWithAccessionedSequence{EntityBase: base, ReferenceEntity: reference(rec.ReferenceEntity)}
		for _, res := range rec.HasModifiedResidue {
			mr := domain.ModifiedResidue{SchemaClass: res.SchemaClass}
			if res.PsiMod != nil {
				mr.PsiMod = &domain.DatabaseIdentifier{DatabaseName: res.PsiMod.DatabaseName, Identifier: res.PsiMod.Identifier}
			}
			ewas.ModifiedResidues = append(ewas.ModifiedResidues, mr)
		}
		return ewas, nil
	case domain.ClassGenomeEncodedEntity:
		return &domain.GenomeEncodedEntity{EntityBase: base}, nil
	case domain.ClassComplex:
		return &domain.Complex{EntityBase: base, Components: ids(rec.HasComponent)}, nil
	case domain.ClassCandidateSet:
		return &domain.CandidateSet{EntitySet: domain.EntitySet{EntityBase: base, Members: ids(rec.HasMember)}}, nil
	case domain.ClassDefinedSet:
		return &domain.DefinedSet{EntitySet: domain.EntitySet{EntityBase: base, Members: ids(rec.HasMember)}}, nil
	case domain.ClassOpenSet:
		return &domain.OpenSet{EntitySet: domain.EntitySet{EntityBase: base, Members: ids(rec.HasMember)}}, nil
	case domain.ClassPolymer:
		return &domain.Polymer{EntityBase: base, RepeatedUnits: ids(rec.RepeatedUnit)}, nil
	case domain.ClassOtherEntity:
		return &domain.OtherEntity{EntityBase: base}, nil
	}
	return nil, fmt.Errorf("record %d: class %q: %w", rec.DBID, rec.SchemaClass, domain.ErrUnknownSchemaClass)
}

func eventBase(rec dto.Record) domain.EventBase {
	base := domain.EventBase{
		DBID:        domain.DBID(rec.DBID),
		StID:        rec.StID,
		DisplayName: rec.DisplayName,
		SchemaClass: rec.SchemaClass,
		Summations:  rec.Summation,
		Created:     edit(rec.Created),
		Modified:    edit(rec.Modified),
		Authored:    edits(rec.Authored),
		Revised:     edits(rec.Revised),
		Edited:      edits(rec.Edited),
		Reviewed:    edits(rec.Reviewed),
		EventOf:     ids(rec.EventOf),
		Species:     ids(rec.Species),
	}
	for _, p := range rec.LiteratureReference {
		class := p.SchemaClass
		if class == "" {
			class = domain.ClassLiteratureReference
		}
		base.LiteratureReferences = append(base.LiteratureReferences, domain.Publication{
			SchemaClass: class,
			Title:       p.Title,
			PubMedID:    p.PubMedIdentifier,
		})
	}
	return base
}

func edit(e *dto.EditRecord) *domain.InstanceEdit {
	if e == nil {
		return nil
	}
	out := &domain.InstanceEdit{DateTime: e.DateTime}
	for _, p := range e.Author {
		person := domain.Person{Surname: p.Surname, FirstName: p.FirstName, Email: p.Email}
		for _, a := range p.Affiliation {
			person.Affiliations = append(person.Affiliations, domain.Affiliation{Names: a.Name})
		}
		out.Authors = append(out.Authors, person)
	}
	return out
}

func edits(in []dto.EditRecord) []domain.InstanceEdit {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.InstanceEdit, 0, len(in))
	for i := range in {
		out = append(out, *edit(&in[i]))
	}
	return out
}

func ids(in []int64) []domain.DBID {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.DBID, len(in))
	for i, v := range in {
		out[i] = domain.DBID(v)
	}
	return out
}

func goTerm(t *dto.GOTerm) *domain.GOTerm {
	if t == nil {
		return nil
	}
	return &domain.GOTerm{Accession: t.Accession, Name: t.Name, EcNumber: t.EcNumber}
}

func reference(r *dto.Reference) *domain.ReferenceEntity {
	if r == nil {
		return nil
	}
	return &domain.ReferenceEntity{DatabaseName: r.DatabaseName, Identifier: r.Identifier}
}

func regulations(in []dto.Regulation) []domain.Regulation {
	var out []domain.Regulation
	for _, r := range in {
		out = append(out, domain.Regulation{
			DBID:        domain.DBID(r.DBID),
			Regulator:   domain.DBID(r.Regulator),
			Explanation: r.Explanation,
		})
	}
	return out
}
