package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error
// describing the first invalid configuration group.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.RequestLimit < 1 || cfg.RateLimit.WindowLength == 0 ||
		cfg.RateLimit.AuthRequestLimit < 1 || cfg.RateLimit.AuthWindowLength == 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
