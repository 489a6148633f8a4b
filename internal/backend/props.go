package backend

import (
	"github.com/apache/iceberg-go"

	"github.com/morristai/iceberg-mcp/internal/config"
)

// Object store property keys understood by the iceberg-go file IO.
const (
	propS3Region          = "s3.region"
	propS3AccessKeyID     = "s3.access-key-id"
	propS3SecretAccessKey = "s3.secret-access-key"
	propS3Endpoint        = "s3.endpoint"
)

// storageProperties returns the properties passed to every table load: the
// configured catalog properties without catalog credentials, overlaid with
// the S3 settings that are set.
func storageProperties(cfg config.Config) iceberg.Properties {
	props := iceberg.Properties{}
	for k, v := range cfg.Catalog.Properties {
		if !config.IsCatalogCredentialKey(k) {
			props[k] = v
		}
	}
	set := func(key, value string) {
		if value != "" {
			props[key] = value
		}
	}
	set(propS3Region, cfg.S3.Region)
	set(propS3AccessKeyID, cfg.S3.AccessKeyID)
	set(propS3SecretAccessKey, cfg.S3.SecretAccessKey)
	set(propS3Endpoint, cfg.S3.Endpoint)
	return props
}

func fullHistory(cfg config.Config) bool {
	return cfg.Catalog.PartitionHistory != config.PartitionHistoryDefault
}
