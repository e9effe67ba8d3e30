// Package sbml is the in-memory output model built by an export: an SBML
// Level 3 Version 1 document with its compartments, species, reactions,
// notes and MIRIAM annotations. Rendering lives in pkg/adapters/sbmlxml.
package sbml
