package config

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// Secret holds a credential that must never be printed or serialized.
// Use Reveal to obtain the raw value when building a request.
type Secret string

// Reveal returns the raw secret value
func (s Secret) Reveal() string {
	return string(s)
}

// IsSet reports whether the secret has a value
func (s Secret) IsSet() bool {
	return s != ""
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return `"` + s.String() + `"`
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// BaseURI returns the root every REST endpoint hangs off:
// {base_url}/{base_path}/{store_code}/{version}
func (c MagentoConfig) BaseURI() string {
	parts := []string{strings.TrimRight(c.BaseURL, "/")}
	for _, segment := range []string{c.BasePath, c.StoreCode, c.Version} {
		if segment = strings.Trim(segment, "/"); segment != "" {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, "/")
}

// Endpoint returns the full URL for an API path such as "products/24-MB01"
func (c MagentoConfig) Endpoint(path string) string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return c.BaseURI()
	}
	return c.BaseURI() + "/" + path
}

// RequestTimeout bounds a whole request
func (c MagentoConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ConnectTimeoutDuration bounds establishing the connection
func (c MagentoConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}

// MarshalZerologObject logs the settings without the access token value
func (c MagentoConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("base_url", c.BaseURL).
		Str("base_path", c.BasePath).
		Str("store_code", c.StoreCode).
		Str("version", c.Version).
		Bool("access_token_set", c.AccessToken.IsSet()).
		Int("timeout", c.Timeout).
		Int("connect_timeout", c.ConnectTimeout)
}
