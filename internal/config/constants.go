package config

// Environment variable names
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvSeed              = "TAVERN_SEED"
	EnvStartingMoney     = "TAVERN_STARTING_MONEY"
	EnvBaseHealth        = "TAVERN_BASE_HEALTH"
	EnvBaseAttack        = "TAVERN_BASE_ATTACK"
	EnvBaseDefense       = "TAVERN_BASE_DEFENSE"
	EnvFleeChance        = "TAVERN_FLEE_CHANCE"
	EnvMaxRounds         = "TAVERN_MAX_ROUNDS"
	EnvCatalogPath       = "TAVERN_CATALOG_PATH"
	EnvCatalogCacheSize  = "TAVERN_CATALOG_CACHE_SIZE"
	EnvJournalPath       = "TAVERN_JOURNAL_PATH"
	EnvJournalMaxEntries = "TAVERN_JOURNAL_MAX_ENTRIES"
)

// Error messages
const (
	ErrMsgParseEnv      = "failed to parse environment"
	ErrMsgInvalidConfig = "invalid configuration"
)

// Warnings
const (
	WarnFixedSeedInProduction = "TAVERN_SEED is fixed in prod; every session will play out the same"
	WarnDebugInProduction     = "LOG_LEVEL is debug in prod; logs will include every combat round"
)
