package server

import (
	"fmt"
	"time"

	"skillgap/internal/catalog"
	"skillgap/internal/config"
	skillgapErrors "skillgap/internal/errors"
	"skillgap/internal/match"
	"skillgap/internal/skills"
	"skillgap/internal/types"
)

// MatchRequest represents the request body for the match endpoint. The job
// is given either inline or as a catalog title, not both.
type MatchRequest struct {
	ResumeSkills []string              `json:"resumeSkills"`
	JobTitle     string                `json:"jobTitle,omitempty"`
	Job          *types.JobRequirement `json:"job,omitempty"`
}

// BatchRequest represents the request body for the batch endpoint. An empty
// jobs list means the whole catalog.
type BatchRequest struct {
	ResumeSkills []string               `json:"resumeSkills"`
	Jobs         []types.JobRequirement `json:"jobs,omitempty"`
}

// SkillsRequest represents the request body for the skills endpoint
type SkillsRequest struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Matching pipeline and job catalog
	Matcher    *match.Matcher
	Normalizer *skills.Normalizer
	Catalog    *catalog.Catalog

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *skillgapErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct. The
// matcher is built from the configured synonym table, and the catalog from
// the configured catalog file (built-in roles when none is set).
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *skillgapErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	table := skills.DefaultTable().Merge(appCfg.Matcher.Synonyms)
	normalizer := skills.NewNormalizer(table)
	matcher := match.NewMatcher(normalizer, appCfg.Matcher.BatchConcurrency)

	jobCatalog := catalog.Builtin()
	if appCfg.Matcher.CatalogFile != "" {
		loaded, err := catalog.Load(appCfg.Matcher.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load job catalog: %w", err)
		}
		jobCatalog = loaded
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Matcher:        matcher,
		Normalizer:     normalizer,
		Catalog:        jobCatalog,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}, nil
}
