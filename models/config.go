package models

type Config struct {
	Debug          bool   `envconfig:"REFMAN_DEBUG"`
	SemVer         string `envconfig:"REFMAN_SEMVER"`
	ServiceContact string `envconfig:"REFMAN_SERVICE_CONTACT"`
	Api            struct {
		Port string `envconfig:"REFMAN_API_INTERNAL_PORT"`
		Url  string `envconfig:"REFMAN_API_URL"`
	}
	Data struct {
		RootPath               string `envconfig:"REFMAN_DATA_ROOT_PATH"`
		RefreshIntervalMinutes int    `envconfig:"REFMAN_DATA_REFRESH_INTERVAL_MINUTES"`
		ScanMaxElapsedSeconds  int    `envconfig:"REFMAN_DATA_SCAN_MAX_ELAPSED_SECONDS"`
	}
}
