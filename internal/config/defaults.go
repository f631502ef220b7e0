package config

const (
	defaultIssuer          = "dcpforge"
	defaultCreator         = "dcpforge"
	defaultTitle           = "Untitled"
	defaultAnnotation      = "Created with dcpforge"
	defaultKind            = "feature"
	defaultStandard        = "smpte"
	defaultSubtitleLang    = "en"
	defaultDigestEnabled   = true
	defaultDigestCachePath = "~/.cache/dcpforge/digests.db"
	defaultOutputDir       = "."
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Package: Package{
			Issuer:     defaultIssuer,
			Creator:    defaultCreator,
			Title:      defaultTitle,
			Annotation: defaultAnnotation,
			Kind:       defaultKind,
			Standard:   defaultStandard,
		},
		Subtitles: Subtitles{
			Language: defaultSubtitleLang,
		},
		Digest: Digest{
			Enabled:   defaultDigestEnabled,
			CachePath: defaultDigestCachePath,
		},
		Output: Output{
			Dir: defaultOutputDir,
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
