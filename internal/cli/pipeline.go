package cli

import (
	"skillgap/internal/catalog"
	"skillgap/internal/config"
	"skillgap/internal/match"
	"skillgap/internal/skills"
)

// buildNormalizer builds the skill normalizer from the built-in synonym
// table merged with any configured extras
func buildNormalizer(cfg *config.Config) *skills.Normalizer {
	table := skills.DefaultTable().Merge(cfg.Matcher.Synonyms)
	return skills.NewNormalizer(table)
}

// buildMatcher builds the matching pipeline from configuration
func buildMatcher(cfg *config.Config) (*match.Matcher, *skills.Normalizer) {
	normalizer := buildNormalizer(cfg)
	return match.NewMatcher(normalizer, cfg.Matcher.BatchConcurrency), normalizer
}

// loadCatalog loads the job catalog: an explicit path wins over the
// configured one, and with neither the built-in roles are used
func loadCatalog(cfg *config.Config, override string) (*catalog.Catalog, error) {
	path := override
	if path == "" {
		path = cfg.Matcher.CatalogFile
	}
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(path)
}
