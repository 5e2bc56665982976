package config

// Config is the top-level boxctl configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
}

// CatalogConfig locates the persisted catalog file.
type CatalogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// SearchConfig holds fuzzy-search tuning knobs.
type SearchConfig struct {
	TopN             int     `mapstructure:"top_n" yaml:"top_n"`
	MinScore         float64 `mapstructure:"min_score" yaml:"min_score"`
	RemoveCandidates int     `mapstructure:"remove_candidates" yaml:"remove_candidates"`
}
