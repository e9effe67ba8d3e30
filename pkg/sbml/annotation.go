package sbml

import "time"

// Qualifier is a MIRIAM biology qualifier.
type Qualifier int

const (
	BQBIs Qualifier = iota
	BQBIsDescribedBy
	BQBHasPart
	BQBIsHomologTo
	BQBHasVersion
)

var qualifierElements = map[Qualifier]string{
	BQBIs:            "is",
	BQBIsDescribedBy: "isDescribedBy",
	BQBHasPart:       "hasPart",
	BQBIsHomologTo:   "isHomologTo",
	BQBHasVersion:    "hasVersion",
}

// Element returns the bqbiol element name of the qualifier.
func (q Qualifier) Element() string {
	if name, ok := qualifierElements[q]; ok {
		return name
	}
	return "unknown"
}

func (q Qualifier) String() string { return "bqbiol:" + q.Element() }

// CVTerm groups the resources recorded under one qualifier.
type CVTerm struct {
	Qualifier Qualifier
	Resources []string
}

// History is the model-level authorship record.
// A nil entry in Modified, or a nil Created, stands for an unparsable source date.
type History struct {
	Creators []Creator
	Created  *time.Time
	Modified []*time.Time
}

// IsEmpty reports whether nothing would be rendered for the history.
func (h *History) IsEmpty() bool {
	if h == nil {
		return true
	}
	if len(h.Creators) > 0 || h.Created != nil {
		return false
	}
	for _, m := range h.Modified {
		if m != nil {
			return false
		}
	}
	return true
}

// Creator is a vCard-style contributor entry.
type Creator struct {
	FamilyName   string
	GivenName    string
	Email        string
	Organisation string
}
