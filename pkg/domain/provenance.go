package domain

// InstanceEdit records one curation action. DateTime is kept as the raw
// source string ("2006-01-02 15:04:05"); parsing happens at export time.
type InstanceEdit struct {
	DateTime string   `json:"dateTime" yaml:"dateTime"`
	Authors  []Person `json:"author,omitempty" yaml:"author,omitempty"`
}

// Person is a curator or author.
type Person struct {
	Surname      string        `json:"surname" yaml:"surname"`
	FirstName    string        `json:"firstname,omitempty" yaml:"firstname,omitempty"`
	Email        string        `json:"eMailAddress,omitempty" yaml:"eMailAddress,omitempty"`
	Affiliations []Affiliation `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// Affiliation is an organisation a person belongs to. Reactome allows several names.
type Affiliation struct {
	Names []string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Publication is a literature entry. Only LiteratureReference entries carry
// a PubMed identifier.
type Publication struct {
	SchemaClass string `json:"schemaClass" yaml:"schemaClass"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	PubMedID    *int   `json:"pubMedIdentifier,omitempty" yaml:"pubMedIdentifier,omitempty"`
}

// PubMed returns the PubMed identifier of a literature reference.
func (p Publication) PubMed() (int, bool) {
	if p.SchemaClass != ClassLiteratureReference || p.PubMedID == nil {
		return 0, false
	}
	return *p.PubMedID, true
}
