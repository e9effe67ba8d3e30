/*
Package ports defines the driven ports (interfaces) of the exporter.

These interfaces decouple the export pipeline from external implementations, allowing
the same builder to read from a graph database or fixture files and to write to a
directory, object storage or a cache.

# Key Interfaces

  - GraphSource: Resolves the source graph reachable from pathways or events (e.g., from Neo4j, Loam or Memory).
  - OutputSink: Receives rendered documents under a file name.
  - ExportCache: Stores rendered documents keyed by what produced them.
  - DistributedLocker: Provides distributed locking so replicas do not render the same export twice.
*/
package ports
