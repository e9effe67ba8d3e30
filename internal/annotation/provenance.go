package annotation

import (
	"fmt"
	"time"
)

// provenanceDateLayout matches the short locale-independent stamp used in
// generated documents, e.g. "10/14/26 3:04 PM".
const provenanceDateLayout = "1/2/06 3:04 PM"

// Provenance returns the document-level paragraph describing how and when a
// document was generated. A zero dbVersion omits the version clause.
func Provenance(dbVersion int, at time.Time, toolVersion string) string {
	text := "SBML generated from Reactome "
	if dbVersion != 0 {
		text += fmt.Sprintf("version %d ", dbVersion)
	}
	text += fmt.Sprintf("on %s using sbmlexport version %s.", at.Format(provenanceDateLayout), toolVersion)
	return text
}
