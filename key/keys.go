// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Catalog Source - these keys select and govern the reference color catalog.
const (
	CatalogPath       = "catalog.path"
	CatalogDuplicates = "catalog.duplicates"
	CatalogCache      = "catalog.cache"
)

// Matching - these keys define how samples are scored and how many results are shown.
const (
	MatchMetric   = "match.metric"
	MatchLimit    = "match.limit"
	MatchSwatches = "match.swatches"
)

// History Tracking - these keys configure the persistence of matched samples.
const (
	HistorySave = "history.save"
)

// Search Interaction - these keys define the behavior of catalog name search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line output.
const (
	CliColored = "cli.colored"
)
