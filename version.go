package sbmlexport

// Version is the exporter release, reported in model provenance and by
// the version command.
const Version = "0.4.0"
