package config

// ServiceProfile describes how to probe one paste service: where it
// lives, what its slugs look like, and how to tell real content from
// the service's own boilerplate pages.
//
// The classification heuristic is deliberately configuration, not code:
// every paste service has its own placeholder page, and hardcoding one
// service's markers would make the tool single-purpose.
type ServiceProfile struct {
	// BaseURL is the service's base address, without a trailing slash.
	// Candidate URLs are formed as BaseURL + "/" + slug.
	BaseURL string `yaml:"baseURL,omitempty"`

	// Alphabet is the character set slugs are drawn from.
	Alphabet string `yaml:"alphabet,omitempty"`

	// MinSlugLength and MaxSlugLength bound the random slug length.
	// Each attempt picks a length uniformly within the range.
	MinSlugLength int `yaml:"minSlugLength,omitempty"`
	MaxSlugLength int `yaml:"maxSlugLength,omitempty"`

	// Cookie is an HTTP cookie sent with every probe, for services
	// that gate content behind a session.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are extra HTTP headers to include in probe requests.
	Headers map[string]string `yaml:"headers,omitempty"`

	// NotFoundMarkers are phrases whose presence in a 200 body means
	// the page is really an error page. Matched case-insensitively.
	NotFoundMarkers []string `yaml:"notFoundMarkers,omitempty"`

	// PlaceholderMarkers are phrases whose presence means the page is
	// the service's empty-paste or landing boilerplate rather than
	// user content. Matched case-insensitively.
	PlaceholderMarkers []string `yaml:"placeholderMarkers,omitempty"`
}

// File represents the structure of the .pastehound configuration file.
type File struct {
	// Services maps profile names to their configurations.
	Services map[string]ServiceProfile `yaml:"services,omitempty"`

	// Defaults is applied to every service unless overridden.
	Defaults ServiceProfile `yaml:"defaults,omitempty"`
}

// RentryProfile returns the built-in profile for rentry.co.
// The marker lists come from what the service actually serves: its 404
// page says "entry not found", and untouched pages carry the markdown
// paste service boilerplate.
func RentryProfile() ServiceProfile {
	return ServiceProfile{
		BaseURL:       DefaultBaseURL,
		Alphabet:      DefaultAlphabet,
		MinSlugLength: DefaultMinSlugLength,
		MaxSlugLength: DefaultMaxSlugLength,
		NotFoundMarkers: []string{
			"404 not found",
			"page not found",
			"entry not found",
			"not found",
			"something went wrong",
		},
		PlaceholderMarkers: []string{
			"markdown paste service",
			"custom url",
			"edit code",
			"how it works",
		},
	}
}

// GetProfile returns the profile for a service name, merging the file's
// defaults under the named profile. The built-in rentry profile is used
// as a base when the name matches DefaultServiceName, so a config file
// can tweak individual fields of the default service without restating
// the rest. Unknown names return ErrUnknownService.
func (cf *File) GetProfile(name string) (ServiceProfile, error) {
	var base ServiceProfile
	known := false

	if name == DefaultServiceName {
		base = RentryProfile()
		known = true
	}

	if cf != nil {
		base = mergeProfile(base, cf.Defaults)
		if p, ok := cf.Services[name]; ok {
			base = mergeProfile(base, p)
			known = true
		}
	}

	if !known {
		return ServiceProfile{}, ErrUnknownService
	}
	return fillProfileDefaults(base), nil
}

// mergeProfile overlays non-zero fields of override on top of base.
func mergeProfile(base, override ServiceProfile) ServiceProfile {
	result := base

	if override.BaseURL != "" {
		result.BaseURL = override.BaseURL
	}
	if override.Alphabet != "" {
		result.Alphabet = override.Alphabet
	}
	if override.MinSlugLength > 0 {
		result.MinSlugLength = override.MinSlugLength
	}
	if override.MaxSlugLength > 0 {
		result.MaxSlugLength = override.MaxSlugLength
	}
	if override.Cookie != "" {
		result.Cookie = override.Cookie
	}
	if len(override.Headers) > 0 {
		if result.Headers == nil {
			result.Headers = make(map[string]string)
		}
		for k, v := range override.Headers {
			result.Headers[k] = v
		}
	}
	if len(override.NotFoundMarkers) > 0 {
		result.NotFoundMarkers = override.NotFoundMarkers
	}
	if len(override.PlaceholderMarkers) > 0 {
		result.PlaceholderMarkers = override.PlaceholderMarkers
	}

	return result
}

// fillProfileDefaults backfills slug settings a custom profile omitted.
// A profile that only sets baseURL still needs something to generate.
func fillProfileDefaults(p ServiceProfile) ServiceProfile {
	if p.Alphabet == "" {
		p.Alphabet = DefaultAlphabet
	}
	if p.MinSlugLength <= 0 {
		p.MinSlugLength = DefaultMinSlugLength
	}
	if p.MaxSlugLength <= 0 {
		p.MaxSlugLength = DefaultMaxSlugLength
	}
	if p.MaxSlugLength < p.MinSlugLength {
		p.MaxSlugLength = p.MinSlugLength
	}
	return p
}
