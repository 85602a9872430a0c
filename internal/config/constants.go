package config

const SourceFileExt = ".weft"

// UnitDescriptorExt is the extension of serialized unit descriptors fed
// to the composition driver.
const UnitDescriptorExt = ".unit.yaml"

// Companion registry artifact.
const (
	RegistryFileName = "companions.db"
	// RegistrySchemaVersion is bumped whenever the companions table
	// layout changes; the registry refuses databases with a different
	// version.
	RegistrySchemaVersion = 1
)
