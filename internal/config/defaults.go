package config

const (
	DefaultCatalogName = "default"
	DefaultRESTURI     = "http://localhost:8181"
	DefaultAWSRegion   = "us-east-1"
	DefaultHost        = "localhost"
	DefaultPort        = 8090
	DefaultLogLevel    = "info"
)

// Default returns the built-in configuration. The catalog kind has no
// default and must be chosen explicitly.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			Name:             DefaultCatalogName,
			PartitionHistory: PartitionHistoryFull,
			Properties:       map[string]string{},
		},
		REST: RESTConfig{
			URI: DefaultRESTURI,
		},
		Glue: GlueConfig{
			Region: DefaultAWSRegion,
		},
		S3: S3Config{
			Region: DefaultAWSRegion,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      DefaultHost,
			Port:      DefaultPort,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// envBindings maps configuration keys to the environment variables that set
// them.
var envBindings = map[string]string{
	"catalog.kind":             "CATALOG_KIND",
	"catalog.name":             "CATALOG_NAME",
	"catalog.partitionHistory": "PARTITION_HISTORY",
	"rest.uri":                 "REST_URI",
	"rest.warehouse":           "REST_WAREHOUSE",
	"glue.warehouse":           "GLUE_WAREHOUSE",
	"glue.profile":             "PROFILE_NAME",
	"glue.region":              "AWS_REGION_NAME",
	"glue.accessKeyID":         "AWS_ACCESS_KEY_ID",
	"glue.secretAccessKey":     "AWS_SECRET_ACCESS_KEY",
	"glue.endpoint":            "GLUE_ENDPOINT",
	"s3.endpoint":              "S3_ENDPOINT",
	"s3.accessKeyID":           "S3_ACCESS_KEY_ID",
	"s3.secretAccessKey":       "S3_SECRET_ACCESS_KEY",
	"s3.region":                "S3_REGION",
	"metastore.uri":            "HIVE_URI",
	"server.transport":         "MCP_TRANSPORT",
	"server.host":              "MCP_HOST",
	"server.port":              "MCP_PORT",
	"log.level":                "LOG_LEVEL",
}

// FlagBindings maps command-line flag names to configuration keys.
var FlagBindings = map[string]string{
	"catalog-kind": "catalog.kind",
	"log-level":    "log.level",
	"transport":    "server.transport",
	"host":         "server.host",
	"port":         "server.port",
}
