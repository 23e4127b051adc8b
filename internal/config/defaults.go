package config

const (
	ProviderIMDb = "imdb"
	ProviderTMDB = "tmdb"

	defaultConfigPath     = "~/.config/moviemanager/config.toml"
	projectConfigName     = "moviemanager.toml"
	defaultProvider       = ProviderIMDb
	defaultTimeoutSeconds = 10
	defaultIMDbBaseURL    = "https://v3.sg.media-imdb.com/suggestion"
	defaultTMDBBaseURL    = "https://api.themoviedb.org/3"
	defaultTMDBLanguage   = "en-US"
	defaultKind           = "movie"
	defaultMaxAttempts    = 3
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// DefaultIgnoreFiles are filesystem artifacts never treated as media.
func DefaultIgnoreFiles() []string {
	return []string{"Thumbs.db", ".DS_Store", "desktop.ini"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Lookup: Lookup{
			Provider:       defaultProvider,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		IMDb: IMDb{
			BaseURL: defaultIMDbBaseURL,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Rename: Rename{
			DefaultKind: defaultKind,
			IgnoreFiles: DefaultIgnoreFiles(),
		},
		Prompt: Prompt{
			MaxAttempts: defaultMaxAttempts,
		},
		Paths: Paths{
			LockDir: defaultLockDir(),
		},
		Logging: Logging{
			Format:      defaultLogFormat,
			Level:       defaultLogLevel,
			OutputPaths: []string{"stdout"},
		},
	}
}
