// Package limits loads the request size limits the console enforces.
package limits

import (
	"strings"

	"github.com/inex/ixp-console/internal/platform/config"
)

// Default limits, matching a stock PHP runtime so migrated deployments keep
// their behaviour when nothing is configured.
const (
	DefaultPostMaxSize       = "8M"
	DefaultUploadMaxFilesize = "2M"
)

// Settings holds the raw size limits, each a number with an optional unit
// letter (b, k, m, g, t, p, e, z, y).
type Settings struct {
	PostMax   string `env:"POST_MAX_SIZE" envDefault:"8M"`
	UploadMax string `env:"UPLOAD_MAX_FILESIZE" envDefault:"2M"`
}

// EnvPrefix namespaces the limit variables, e.g. IXP_CONSOLE_POST_MAX_SIZE.
const EnvPrefix = "IXP_CONSOLE_"

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var settings Settings
	if err := config.ParseEnvWithPrefix(&settings, EnvPrefix); err != nil {
		return Settings{}, err
	}
	return settings.normalized(), nil
}

// PostMaxSize returns the maximum request body size.
func (s Settings) PostMaxSize() string {
	return s.PostMax
}

// UploadMaxFilesize returns the maximum size of a single uploaded file.
// "0" means unlimited.
func (s Settings) UploadMaxFilesize() string {
	return s.UploadMax
}

func (s Settings) normalized() Settings {
	s.PostMax = strings.TrimSpace(s.PostMax)
	s.UploadMax = strings.TrimSpace(s.UploadMax)
	if s.PostMax == "" {
		s.PostMax = DefaultPostMaxSize
	}
	if s.UploadMax == "" {
		s.UploadMax = DefaultUploadMaxFilesize
	}
	return s
}
