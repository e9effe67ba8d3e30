/*
Package sbmlexport converts Reactome pathways into SBML Level 3 models.

It reads a pathway graph (pathways, reaction-like events, physical entities,
compartments and species) from a GraphSource and builds one model per
pathway, or one model for an arbitrary list of events. Each model carries
MIRIAM cross-references, curation history, provenance and human-readable
notes taken from the source graph. A skeletal BioPAX Level 3 writer is
registered alongside SBML.

# Sources

The default source is a Loam fixture directory with one Reactome object per
file. Adapters also read YAML or JSON record bundles (pkg/adapters/file) and
the Reactome graph database over Bolt (pkg/adapters/neo4j).

# Usage

	exp, err := sbmlexport.New("./reactome-fixtures")
	if err != nil {
		log.Fatal(err)
	}

	// Writes ./109581.xml
	name, err := exp.ExportPathway(ctx, sbmlexport.FormatSBML, 109581)

	// Every pathway of Homo sapiens, four at a time
	report, err := exp.ExportSpecies(ctx, sbmlexport.FormatSBML, 48887)

Outputs go through an OutputSink (a directory, stdout or S3). Rendered
pathways can be cached in Redis and guarded by a cross-process lock so
replicas of the HTTP server do not render the same model twice.

# Determinism

WithTestMode drops the generation timestamp and parent inference, so the
same graph always yields byte-identical output.
*/
package sbmlexport
