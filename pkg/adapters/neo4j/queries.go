package neo4j

// Every query returns one projected map per object in a "record" column.
// Lists whose order matters are returned as {id, order} pairs and sorted
// client side, since pattern comprehensions cannot be ordered.

const eventsQuery = `
MATCH (root:Event) WHERE root.dbId IN $roots
MATCH (root)-[:hasEvent*0..]->(e:Event)
WITH DISTINCT e
RETURN e {
  .dbId, .stId, .displayName, .schemaClass,
  summation: [(e)-[:summation]->(s:Summation) | s.text],
  species: [(e)-[:species]->(sp:Species) | sp.dbId],
  eventOf: [(p:Pathway)-[:hasEvent]->(e) | p.dbId],
  hasEvent: [(e)-[r:hasEvent]->(c:Event) | {id: c.dbId, order: r.order}],
  input: [(e)-[r:input]->(pe:PhysicalEntity) | {id: pe.dbId, order: r.order}],
  output: [(e)-[r:output]->(pe:PhysicalEntity) | {id: pe.dbId, order: r.order}],
  catalystActivity: [(e)-[:catalystActivity]->(ca:CatalystActivity) | {
    dbId: ca.dbId,
    physicalEntity: head([(ca)-[:physicalEntity]->(pe:PhysicalEntity) | pe.dbId]),
    activity: head([(ca)-[:activity]->(go:GO_MolecularFunction) | {accession: go.accession, name: go.displayName, ecNumber: go.ecNumber}])
  }],
  positivelyRegulatedBy: [(e)-[:regulatedBy]->(reg:PositiveRegulation) | {
    dbId: reg.dbId, explanation: reg.explanation,
    regulator: head([(reg)-[:regulator]->(x) | x.dbId])
  }],
  negativelyRegulatedBy: [(e)-[:regulatedBy]->(reg:NegativeRegulation) | {
    dbId: reg.dbId, explanation: reg.explanation,
    regulator: head([(reg)-[:regulator]->(x) | x.dbId])
  }],
  goBiologicalProcess: head([(e)-[:goBiologicalProcess]->(go:GO_BiologicalProcess) | {accession: go.accession, name: go.displayName}]),
  literatureReference: [(e)-[:literatureReference]->(lr:Publication) | {schemaClass: lr.schemaClass, title: lr.title, pubMedIdentifier: lr.pubMedIdentifier}],
  created: head([(e)-[:created]-(ie:InstanceEdit) | {dateTime: ie.dateTime, author: [(ie)-[:author]-(pp:Person) | {surname: pp.surname, firstname: pp.firstname, eMailAddress: pp.eMailAddress, affiliation: [(pp)-[:affiliation]->(af:Affiliation) | {name: af.name}]}]}]),
  modified: head([(e)-[:modified]-(ie:InstanceEdit) | {dateTime: ie.dateTime, author: [(ie)-[:author]-(pp:Person) | {surname: pp.surname, firstname: pp.firstname, eMailAddress: pp.eMailAddress, affiliation: [(pp)-[:affiliation]->(af:Affiliation) | {name: af.name}]}]}]),
  authored: [(e)-[:authored]-(ie:InstanceEdit) | {dateTime: ie.dateTime, author: [(ie)-[:author]-(pp:Person) | {surname: pp.surname, firstname: pp.firstname, eMailAddress: pp.eMailAddress, affiliation: [(pp)-[:affiliation]->(af:Affiliation) | {name: af.name}]}]}],
  revised: [(e)-[:revised]-(ie:InstanceEdit) | {dateTime: ie.dateTime, author: [(ie)-[:author]-(pp:Person) | {surname: pp.surname, firstname: pp.firstname, eMailAddress: pp.eMailAddress, affiliation: [(pp)-[:affiliation]->(af:Affiliation) | {name: af.name}]}]}]
} AS record
`

const entitiesQuery = `
MATCH (root:Event) WHERE root.dbId IN $roots
MATCH (root)-[:hasEvent*0..]->(rle:ReactionLikeEvent)
MATCH (rle)-[:input|output|catalystActivity|physicalEntity|regulatedBy|regulator*1..2]->(pe:PhysicalEntity)
MATCH (pe)-[:hasComponent|hasMember|hasCandidate|repeatedUnit*0..]->(x:PhysicalEntity)
WITH DISTINCT x
RETURN x {
  .dbId, .stId, .displayName, .schemaClass,
  compartment: [(x)-[r:compartment]->(c:Compartment) | {id: c.dbId, order: r.order}],
  inferredTo: [(x)-[:inferredTo]->(o:PhysicalEntity) | o.dbId],
  inferredFrom: [(o:PhysicalEntity)-[:inferredTo]->(x) | o.dbId],
  referenceEntity: head([(x)-[:referenceEntity]->(re:ReferenceEntity) | {databaseName: re.databaseName, identifier: re.identifier}]),
  crossReference: [(x)-[:crossReference]->(di:DatabaseIdentifier) | {databaseName: di.databaseName, identifier: di.identifier}],
  hasModifiedResidue: [(x)-[:hasModifiedResidue]->(mr) | {
    schemaClass: mr.schemaClass,
    psiMod: head([(mr)-[:psiMod]->(pm) | {databaseName: 'MOD', identifier: pm.identifier}])
  }],
  hasComponent: [(x)-[r:hasComponent]->(c:PhysicalEntity) | {id: c.dbId, order: r.order}],
  hasMember: [(x)-[r:hasMember|hasCandidate]->(c:PhysicalEntity) | {id: c.dbId, order: r.order}],
  repeatedUnit: [(x)-[r:repeatedUnit]->(c:PhysicalEntity) | {id: c.dbId, order: r.order}]
} AS record
`

const compartmentsQuery = `
MATCH (c:Compartment) WHERE c.dbId IN $ids
RETURN c {.dbId, .displayName, .accession, schemaClass: 'Compartment'} AS record
`

const speciesQuery = `
MATCH (s:Species)
RETURN s {.dbId, .displayName, .taxId, schemaClass: 'Species'} AS record
ORDER BY s.dbId
`

const pathwaysForSpeciesQuery = `
MATCH (s:Species {dbId: $species})
OPTIONAL MATCH (p:Pathway)-[:species]->(s)
WITH s, p ORDER BY p.dbId
RETURN s.dbId AS species, collect(p.dbId) AS pathways
`

const dbVersionQuery = `
MATCH (d:DBInfo) RETURN d.version AS version LIMIT 1
`
