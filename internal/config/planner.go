package config

// SplitMode selects how a total budget is divided across categories.
type SplitMode string

const (
	SplitProportional SplitMode = "proportional"
	SplitEqual        SplitMode = "equal"
)

// DedupePrecedence decides which duplicate-submission signal is consulted
// first: the session's own submitted flag or the request store. The source
// behavior was inconsistent, so both orderings are supported explicitly.
type DedupePrecedence string

const (
	DedupeSessionFirst DedupePrecedence = "session"
	DedupeStoreFirst   DedupePrecedence = "store"
)

type EventTypeDef struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Emoji string `mapstructure:"emoji"`
}

type CatalogEntry struct {
	Category        string `mapstructure:"category"`
	DefaultSelected bool   `mapstructure:"default_selected"`
}

// PercentageRow pairs a category with its share of the budget. Tables are
// slices, not maps: position is the tie-breaker for remainder assignment
// and the equal-split "last category" rule, so iteration order must be fixed.
type PercentageRow struct {
	Category string `mapstructure:"category"`
	Percent  int    `mapstructure:"percent"`
}

type PercentageTable []PercentageRow

// PlannerConfig holds all data-driven planning tables. The allocation
// algorithm itself never embeds event-type knowledge.
type PlannerConfig struct {
	EventTypes     []EventTypeDef             `mapstructure:"event_types"`
	Catalogs       map[string][]CatalogEntry  `mapstructure:"catalogs"`
	DefaultCatalog []CatalogEntry             `mapstructure:"default_catalog"`
	Percentages    map[string]PercentageTable `mapstructure:"percentages"`
	DefaultTable   PercentageTable            `mapstructure:"default_table"`
	Dedupe         DedupePrecedence           `mapstructure:"dedupe_precedence"`
	SessionTTLMin  int                        `mapstructure:"session_ttl_minutes"`
}

// DefaultPlannerConfig returns the compiled-in planning tables. A config
// file, when present, replaces whole sections rather than merging rows.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		EventTypes: []EventTypeDef{
			{ID: "wedding", Name: "Wedding", Emoji: "💍"},
			{ID: "birthday", Name: "Birthday Party", Emoji: "🎂"},
			{ID: "corporate", Name: "Corporate Event", Emoji: "💼"},
			{ID: "engagement", Name: "Engagement", Emoji: "💐"},
			{ID: "anniversary", Name: "Anniversary", Emoji: "🎉"},
		},
		Catalogs: map[string][]CatalogEntry{
			"wedding": {
				{Category: "Venue", DefaultSelected: true},
				{Category: "Caterer", DefaultSelected: true},
				{Category: "Decorator", DefaultSelected: true},
				{Category: "Photographer", DefaultSelected: true},
				{Category: "MakeupArtist", DefaultSelected: true},
				{Category: "SoundLighting", DefaultSelected: false},
				{Category: "Entertainment", DefaultSelected: false},
				{Category: "Anchor", DefaultSelected: false},
			},
			"birthday": {
				{Category: "Caterer", DefaultSelected: true},
				{Category: "Decorator", DefaultSelected: true},
				{Category: "Photographer", DefaultSelected: true},
				{Category: "Entertainment", DefaultSelected: true},
				{Category: "Venue", DefaultSelected: false},
				{Category: "SoundLighting", DefaultSelected: false},
				{Category: "Anchor", DefaultSelected: false},
				{Category: "MakeupArtist", DefaultSelected: false},
			},
			"corporate": {
				{Category: "Venue", DefaultSelected: true},
				{Category: "Caterer", DefaultSelected: true},
				{Category: "SoundLighting", DefaultSelected: true},
				{Category: "Photographer", DefaultSelected: true},
				{Category: "Anchor", DefaultSelected: false},
				{Category: "Decorator", DefaultSelected: false},
			},
			"engagement": {
				{Category: "Venue", DefaultSelected: true},
				{Category: "Caterer", DefaultSelected: true},
				{Category: "Decorator", DefaultSelected: true},
				{Category: "Photographer", DefaultSelected: true},
				{Category: "MakeupArtist", DefaultSelected: false},
				{Category: "Entertainment", DefaultSelected: false},
			},
			"anniversary": {
				{Category: "Caterer", DefaultSelected: true},
				{Category: "Decorator", DefaultSelected: true},
				{Category: "Photographer", DefaultSelected: true},
				{Category: "Venue", DefaultSelected: false},
				{Category: "Entertainment", DefaultSelected: false},
			},
		},
		DefaultCatalog: []CatalogEntry{
			{Category: "Venue", DefaultSelected: true},
			{Category: "Caterer", DefaultSelected: true},
			{Category: "Decorator", DefaultSelected: true},
			{Category: "Photographer", DefaultSelected: true},
			{Category: "Entertainment", DefaultSelected: false},
			{Category: "SoundLighting", DefaultSelected: false},
		},
		Percentages: map[string]PercentageTable{
			"wedding": {
				{Category: "Decorator", Percent: 25},
				{Category: "Photographer", Percent: 15},
				{Category: "Caterer", Percent: 30},
				{Category: "Venue", Percent: 15},
				{Category: "MakeupArtist", Percent: 8},
				{Category: "SoundLighting", Percent: 5},
				{Category: "Entertainment", Percent: 2},
			},
			"birthday": {
				{Category: "Caterer", Percent: 35},
				{Category: "Decorator", Percent: 25},
				{Category: "Photographer", Percent: 15},
				{Category: "Entertainment", Percent: 10},
				{Category: "Venue", Percent: 10},
				{Category: "SoundLighting", Percent: 5},
			},
			"corporate": {
				{Category: "Venue", Percent: 30},
				{Category: "Caterer", Percent: 30},
				{Category: "SoundLighting", Percent: 15},
				{Category: "Photographer", Percent: 10},
				{Category: "Anchor", Percent: 10},
				{Category: "Decorator", Percent: 5},
			},
			"engagement": {
				{Category: "Venue", Percent: 20},
				{Category: "Caterer", Percent: 25},
				{Category: "Decorator", Percent: 20},
				{Category: "Photographer", Percent: 15},
				{Category: "MakeupArtist", Percent: 10},
				{Category: "Entertainment", Percent: 10},
			},
			"anniversary": {
				{Category: "Caterer", Percent: 30},
				{Category: "Decorator", Percent: 25},
				{Category: "Photographer", Percent: 20},
				{Category: "Venue", Percent: 15},
				{Category: "Entertainment", Percent: 10},
			},
		},
		DefaultTable: PercentageTable{
			{Category: "Venue", Percent: 25},
			{Category: "Caterer", Percent: 30},
			{Category: "Decorator", Percent: 20},
			{Category: "Photographer", Percent: 15},
			{Category: "Entertainment", Percent: 10},
		},
		Dedupe:        DedupeStoreFirst,
		SessionTTLMin: 120,
	}
}
