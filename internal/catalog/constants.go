package catalog

// Embedded file names
const (
	// SchemaFileName is the JSON schema every catalog file must satisfy
	SchemaFileName = "catalog.schema.json"

	// DefaultCatalogFileName is the catalog used when no override path is configured
	DefaultCatalogFileName = "default_catalog.json"
)

// DefaultCacheSize is the number of parsed catalog files kept in the loader cache
const DefaultCacheSize = 8

// Fixed catalog shape
const (
	DrinkCount    = 4
	TierItemCount = 3
	TierMobCount  = 2
)

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailedFmt    = "schema validation failed for %s: %w"
	ErrMsgCreateCacheFailed  = "failed to create catalog cache: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgCatalogNil        = "catalog is nil"
	ErrFmtDrinkCount        = "%w: tavern needs %d drinks, has %d"
	ErrFmtMissingTier       = "%w: tier %q is missing"
	ErrFmtTierSize          = "%w: tier %q needs %d items and %d mobs, has %d and %d"
	ErrFmtEmptyName         = "%w: %s at index %d has empty name"
	ErrFmtDuplicateID       = "%w: id %d is used more than once"
	ErrFmtNegativePrice     = "%w: drink %q has negative price"
	ErrFmtMobNotAlive       = "%w: mob %q must start with positive health"
	ErrFmtTierNotScaled     = "%w: tier %q %s power %d does not exceed %q (%d)"
	ErrFmtUnknownDifficulty = "%w: no tier for difficulty %q"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgCatalogCacheHit = "Catalog cache hit"
	LogMsgUsingDefaultCat = "Using embedded default catalog"
)
