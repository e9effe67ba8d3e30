/*
Package domain contains the source model read by the exporter: the Reactome
pathway graph.

Objects live in a Graph arena and reference each other by DBID, so composite
structures (complexes of complexes, nested pathways) never form pointer cycles.
The package is kept free of I/O; loaders in pkg/adapters populate a Graph.

# Key Entities

  - Event: sealed over Pathway and ReactionLikeEvent.
  - PhysicalEntity: sealed over the nine Reactome entity variants.
  - Compartment: a GO cellular component where entities reside.
  - InstanceEdit, Person, Publication: authorship and literature metadata.
*/
package domain
