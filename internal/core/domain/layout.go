package domain

import "path/filepath"

const (
	// DatagenDirName is the name of the internal working directory.
	DatagenDirName = ".datagen"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// CLDRCacheDirName is the name of the fetched CLDR document cache directory.
	CLDRCacheDirName = "cldr"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "datagen.yaml"

	// EnvFileName is the name of the optional environment override file.
	EnvFileName = ".env"

	// DefaultOutput is the default blob path.
	DefaultOutput = "locale_data.blob"

	// DefaultCLDRVersion is the cldr-json release exported by default.
	DefaultCLDRVersion = "46.0.0"

	// DefaultBaseURL hosts the cldr-json releases.
	DefaultBaseURL = "https://raw.githubusercontent.com/unicode-org/cldr-json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLocales is the locale selection used when none is configured.
var DefaultLocales = []string{
	"ar", "de", "en", "en-GB", "es", "fr", "it", "ja", "lt", "nl", "pl", "ru", "tr", "zh",
}

// DefaultCLDRCachePath returns the default path for fetched CLDR documents.
// It joins .datagen, cache, and cldr.
func DefaultCLDRCachePath() string {
	return filepath.Join(DatagenDirName, CacheDirName, CLDRCacheDirName)
}
