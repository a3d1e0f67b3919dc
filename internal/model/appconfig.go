package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Where gallery references ("/projects/...") are resolved on disk.
	ImageRoot string `json:"image_root" env:"IMAGE_ROOT"`
	// Public site address; brochure QR codes point at BaseURL/projects/<slug>.
	BaseURL string `json:"base_url" env:"BASE_URL"`
	// SQLite file holding submitted inquiries. Empty means the default path.
	InquiryDB string `json:"inquiry_db" env:"INQUIRY_DB"`

	WindowWidth  float32 `json:"window_width"`
	WindowHeight float32 `json:"window_height"`

	RecentProjects []string `json:"recent_projects"` // slugs, most recent first
	Theme          string   `json:"theme" env:"THEME"` // "light", "dark", "system"
}

// MaxRecentProjects bounds AppConfig.RecentProjects.
const MaxRecentProjects = 8

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		ImageRoot:      "",
		BaseURL:        "https://studiofolio.example",
		WindowWidth:    1280,
		WindowHeight:   820,
		RecentProjects: []string{},
		Theme:          "system",
	}
}

// AddRecent moves slug to the front of RecentProjects, dropping the oldest
// entries past MaxRecentProjects.
func (c *AppConfig) AddRecent(slug string) {
	if slug == "" {
		return
	}
	recent := []string{slug}
	for _, s := range c.RecentProjects {
		if s != slug {
			recent = append(recent, s)
		}
	}
	if len(recent) > MaxRecentProjects {
		recent = recent[:MaxRecentProjects]
	}
	c.RecentProjects = recent
}
