package config

import (
	"maps"

	"gopkg.in/yaml.v3"
)

const redacted = "<redacted>"

// Redacted returns a copy of cfg with credentials masked.
func (c Config) Redacted() Config {
	out := c
	out.Catalog.Properties = maps.Clone(c.Catalog.Properties)
	mask := func(s *string) {
		if *s != "" {
			*s = redacted
		}
	}
	mask(&out.Glue.AccessKeyID)
	mask(&out.Glue.SecretAccessKey)
	mask(&out.S3.AccessKeyID)
	mask(&out.S3.SecretAccessKey)
	for key := range out.Catalog.Properties {
		if isSecretKey(key) {
			out.Catalog.Properties[key] = redacted
		}
	}
	return out
}

// Render returns the redacted configuration as YAML.
func Render(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg.Redacted())
}

// IsCatalogCredentialKey reports whether a catalog property authenticates
// against the catalog service itself. These are consumed when the catalog is
// opened and are not object store settings.
func IsCatalogCredentialKey(key string) bool {
	switch key {
	case "credential", "token":
		return true
	}
	return false
}

func isSecretKey(key string) bool {
	switch key {
	case "s3.secret-access-key", "s3.session-token", "client.secret-access-key", "client.session-token":
		return true
	}
	return IsCatalogCredentialKey(key)
}
