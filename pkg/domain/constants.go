package domain

// Schema class names as they appear in the Reactome graph database.
const (
	ClassPathway             = "Pathway"
	ClassTopLevelPathway     = "TopLevelPathway"
	ClassReaction            = "Reaction"
	ClassBlackBoxEvent       = "BlackBoxEvent"
	ClassPolymerisation      = "Polymerisation"
	ClassDepolymerisation    = "Depolymerisation"
	ClassFailedReaction      = "FailedReaction"
	ClassReactionLikeEvent   = "ReactionLikeEvent"
	ClassSimpleEntity        = "SimpleEntity"
	ClassEWAS                = "EntityWithAccessionedSequence"
	ClassGenomeEncodedEntity = "GenomeEncodedEntity"
	ClassComplex             = "Complex"
	ClassCandidateSet        = "CandidateSet"
	ClassDefinedSet          = "DefinedSet"
	ClassOpenSet             = "OpenSet"
	ClassOtherEntity         = "OtherEntity"
	ClassPolymer             = "Polymer"
	ClassCompartment         = "Compartment"
	ClassSpecies             = "Species"
	ClassDBInfo              = "DBInfo"

	ClassLiteratureReference       = "LiteratureReference"
	ClassTranslationalModification = "TranslationalModification"

	// DatabaseCompound is the cross-reference database name under which
	// Reactome stores KEGG compound identifiers.
	DatabaseCompound = "COMPOUND"
)

// IsPathwayClass reports whether a schema class denotes a pathway container.
func IsPathwayClass(class string) bool {
	return class == ClassPathway || class == ClassTopLevelPathway
}

// IsReactionClass reports whether a schema class denotes a reaction-like event.
func IsReactionClass(class string) bool {
	switch class {
	case ClassReaction, ClassBlackBoxEvent, ClassPolymerisation,
		ClassDepolymerisation, ClassFailedReaction, ClassReactionLikeEvent:
		return true
	}
	return false
}
