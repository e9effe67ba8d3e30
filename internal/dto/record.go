package dto

// Record is one Reactome object as it appears in fixture files and bundles.
// It uses "mapstructure" tags so frontmatter, YAML and JSON decode through the
// same path. Fields that do not apply to the record's schemaClass are ignored.
type Record struct {
	DBID        int64  `json:"dbId" yaml:"dbId" mapstructure:"dbId"`
	StID        string `json:"stId,omitempty" yaml:"stId,omitempty" mapstructure:"stId"`
	DisplayName string `json:"displayName" yaml:"displayName" mapstructure:"displayName"`
	SchemaClass string `json:"schemaClass" yaml:"schemaClass" mapstructure:"schemaClass"`

	// Events
	Summation             []string           `json:"summation,omitempty" yaml:"summation,omitempty" mapstructure:"summation"`
	Created               *EditRecord        `json:"created,omitempty" yaml:"created,omitempty" mapstructure:"created"`
	Modified              *EditRecord        `json:"modified,omitempty" yaml:"modified,omitempty" mapstructure:"modified"`
	Authored              []EditRecord       `json:"authored,omitempty" yaml:"authored,omitempty" mapstructure:"authored"`
	Revised               []EditRecord       `json:"revised,omitempty" yaml:"revised,omitempty" mapstructure:"revised"`
	Edited                []EditRecord       `json:"edited,omitempty" yaml:"edited,omitempty" mapstructure:"edited"`
	Reviewed              []EditRecord       `json:"reviewed,omitempty" yaml:"reviewed,omitempty" mapstructure:"reviewed"`
	LiteratureReference   []Publication      `json:"literatureReference,omitempty" yaml:"literatureReference,omitempty" mapstructure:"literatureReference"`
	EventOf               []int64            `json:"eventOf,omitempty" yaml:"eventOf,omitempty" mapstructure:"eventOf"`
	Species               []int64            `json:"species,omitempty" yaml:"species,omitempty" mapstructure:"species"`
	HasEvent              []int64            `json:"hasEvent,omitempty" yaml:"hasEvent,omitempty" mapstructure:"hasEvent"`
	Input                 []int64            `json:"input,omitempty" yaml:"input,omitempty" mapstructure:"input"`
	Output                []int64            `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
	CatalystActivity      []CatalystActivity `json:"catalystActivity,omitempty" yaml:"catalystActivity,omitempty" mapstructure:"catalystActivity"`
	PositivelyRegulatedBy []Regulation       `json:"positivelyRegulatedBy,omitempty" yaml:"positivelyRegulatedBy,omitempty" mapstructure:"positivelyRegulatedBy"`
	NegativelyRegulatedBy []Regulation       `json:"negativelyRegulatedBy,omitempty" yaml:"negativelyRegulatedBy,omitempty" mapstructure:"negativelyRegulatedBy"`
	GoBiologicalProcess   *GOTerm            `json:"goBiologicalProcess,omitempty" yaml:"goBiologicalProcess,omitempty" mapstructure:"goBiologicalProcess"`

	// Physical entities
	Compartment        []int64     `json:"compartment,omitempty" yaml:"compartment,omitempty" mapstructure:"compartment"`
	InferredTo         []int64     `json:"inferredTo,omitempty" yaml:"inferredTo,omitempty" mapstructure:"inferredTo"`
	InferredFrom       []int64     `json:"inferredFrom,omitempty" yaml:"inferredFrom,omitempty" mapstructure:"inferredFrom"`
	ReferenceEntity    *Reference  `json:"referenceEntity,omitempty" yaml:"referenceEntity,omitempty" mapstructure:"referenceEntity"`
	CrossReference     []Reference `json:"crossReference,omitempty" yaml:"crossReference,omitempty" mapstructure:"crossReference"`
	HasModifiedResidue []Residue   `json:"hasModifiedResidue,omitempty" yaml:"hasModifiedResidue,omitempty" mapstructure:"hasModifiedResidue"`
	HasComponent       []int64     `json:"hasComponent,omitempty" yaml:"hasComponent,omitempty" mapstructure:"hasComponent"`
	HasMember          []int64     `json:"hasMember,omitempty" yaml:"hasMember,omitempty" mapstructure:"hasMember"`
	RepeatedUnit       []int64     `json:"repeatedUnit,omitempty" yaml:"repeatedUnit,omitempty" mapstructure:"repeatedUnit"`

	// Compartments, species and release info
	Accession string `json:"accession,omitempty" yaml:"accession,omitempty" mapstructure:"accession"`
	TaxID     string `json:"taxId,omitempty" yaml:"taxId,omitempty" mapstructure:"taxId"`
	Version   int    `json:"version,omitempty" yaml:"version,omitempty" mapstructure:"version"`
}

// Bundle is a whole source graph in a single document.
type Bundle struct {
	DBVersion int      `json:"dbVersion" yaml:"dbVersion" mapstructure:"dbVersion"`
	Records   []Record `json:"records" yaml:"records" mapstructure:"records"`
}

type EditRecord struct {
	DateTime string   `json:"dateTime" yaml:"dateTime" mapstructure:"dateTime"`
	Author   []Person `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`
}

type Person struct {
	Surname     string        `json:"surname" yaml:"surname" mapstructure:"surname"`
	FirstName   string        `json:"firstname,omitempty" yaml:"firstname,omitempty" mapstructure:"firstname"`
	Email       string        `json:"eMailAddress,omitempty" yaml:"eMailAddress,omitempty" mapstructure:"eMailAddress"`
	Affiliation []Affiliation `json:"affiliation,omitempty" yaml:"affiliation,omitempty" mapstructure:"affiliation"`
}

type Affiliation struct {
	Name []string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
}

// Publication defaults to a LiteratureReference when schemaClass is empty.
type Publication struct {
	SchemaClass      string `json:"schemaClass,omitempty" yaml:"schemaClass,omitempty" mapstructure:"schemaClass"`
	Title            string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	PubMedIdentifier *int   `json:"pubMedIdentifier,omitempty" yaml:"pubMedIdentifier,omitempty" mapstructure:"pubMedIdentifier"`
}

type Reference struct {
	DatabaseName string `json:"databaseName" yaml:"databaseName" mapstructure:"databaseName"`
	Identifier   string `json:"identifier" yaml:"identifier" mapstructure:"identifier"`
}

type Residue struct {
	SchemaClass string     `json:"schemaClass" yaml:"schemaClass" mapstructure:"schemaClass"`
	PsiMod      *Reference `json:"psiMod,omitempty" yaml:"psiMod,omitempty" mapstructure:"psiMod"`
}

type GOTerm struct {
	Accession string `json:"accession" yaml:"accession" mapstructure:"accession"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	EcNumber  string `json:"ecNumber,omitempty" yaml:"ecNumber,omitempty" mapstructure:"ecNumber"`
}

type CatalystActivity struct {
	DBID           int64   `json:"dbId,omitempty" yaml:"dbId,omitempty" mapstructure:"dbId"`
	PhysicalEntity int64   `json:"physicalEntity,omitempty" yaml:"physicalEntity,omitempty" mapstructure:"physicalEntity"`
	Activity       *GOTerm `json:"activity,omitempty" yaml:"activity,omitempty" mapstructure:"activity"`
}

type Regulation struct {
	DBID        int64  `json:"dbId,omitempty" yaml:"dbId,omitempty" mapstructure:"dbId"`
	Regulator   int64  `json:"regulator" yaml:"regulator" mapstructure:"regulator"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty" mapstructure:"explanation"`
}
