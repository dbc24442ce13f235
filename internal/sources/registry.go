package sources

// Registry maps platform identifiers to their content sources
type Registry struct {
	byPlatform map[string]Source
}

// NewRegistry creates a registry with all supported platform sources
func NewRegistry() *Registry {
	twitter := NewTwitterSource()

	return &Registry{
		byPlatform: map[string]Source{
			"x":         twitter,
			"twitter":   twitter,
			"reddit":    NewRedditSource(),
			"linkedin":  NewLinkedInSource(),
			"instagram": NewInstagramSource(),
			"youtube":   NewYouTubeSource(),
			"web":       NewWebSource(),
		},
	}
}

// ForPlatform returns the source for a platform id, or nil when the
// platform is not supported
func (r *Registry) ForPlatform(platform string) Source {
	return r.byPlatform[platform]
}
