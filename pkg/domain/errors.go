package domain

import "errors"

// ErrPathwayNotFound is returned when a source has no object for a pathway id.
var ErrPathwayNotFound = errors.New("pathway not found")

// ErrEventNotFound is returned when a source has no object for an event id.
var ErrEventNotFound = errors.New("event not found")

// ErrNotAPathway is returned when an id resolves to an event that is not a pathway.
var ErrNotAPathway = errors.New("object is not a pathway")

// ErrSpeciesNotFound is returned when a species (taxon) id is unknown to the source.
var ErrSpeciesNotFound = errors.New("species not found")

// ErrUnknownSchemaClass is returned when a record carries a schema class the compiler cannot map.
var ErrUnknownSchemaClass = errors.New("unknown schema class")

// ErrUnknownFormat is returned when an export format is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrCacheMiss is returned by export caches when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")
