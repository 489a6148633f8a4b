package config

import "github.com/morristai/iceberg-mcp/internal/catalog"

// Config is the top-level configuration structure for iceberg-mcp.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog" yaml:"catalog"`
	REST      RESTConfig      `mapstructure:"rest" yaml:"rest"`
	Glue      GlueConfig      `mapstructure:"glue" yaml:"glue"`
	S3        S3Config        `mapstructure:"s3" yaml:"s3"`
	Metastore MetastoreConfig `mapstructure:"metastore" yaml:"metastore"`
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// PartitionHistory selects which partition specs loaded tables expose.
type PartitionHistory string

const (
	// PartitionHistoryFull exposes every spec the table ever had.
	PartitionHistoryFull PartitionHistory = "full"
	// PartitionHistoryDefault exposes only the active spec.
	PartitionHistoryDefault PartitionHistory = "default"
)

// CatalogConfig selects the backend.
type CatalogConfig struct {
	Kind             catalog.Type      `mapstructure:"kind" yaml:"kind"`                         // CATALOG_KIND
	Name             string            `mapstructure:"name" yaml:"name"`                         // CATALOG_NAME
	PartitionHistory PartitionHistory  `mapstructure:"partitionHistory" yaml:"partitionHistory"` // PARTITION_HISTORY
	Properties       map[string]string `mapstructure:"properties" yaml:"properties,omitempty"`   // passed through to the client library
}

// RESTConfig configures a REST catalog service.
type RESTConfig struct {
	URI       string `mapstructure:"uri" yaml:"uri"`                       // REST_URI
	Warehouse string `mapstructure:"warehouse" yaml:"warehouse,omitempty"` // REST_WAREHOUSE
}

// GlueConfig configures the AWS Glue catalog. When Profile is set the static
// keys are ignored.
type GlueConfig struct {
	Warehouse       string `mapstructure:"warehouse" yaml:"warehouse,omitempty"`             // GLUE_WAREHOUSE, unused by reads
	Profile         string `mapstructure:"profile" yaml:"profile,omitempty"`                 // PROFILE_NAME
	Region          string `mapstructure:"region" yaml:"region"`                             // AWS_REGION_NAME
	AccessKeyID     string `mapstructure:"accessKeyID" yaml:"accessKeyID,omitempty"`         // AWS_ACCESS_KEY_ID
	SecretAccessKey string `mapstructure:"secretAccessKey" yaml:"secretAccessKey,omitempty"` // AWS_SECRET_ACCESS_KEY
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`               // GLUE_ENDPOINT
}

// S3Config configures the object store that holds table metadata files.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`               // S3_ENDPOINT
	AccessKeyID     string `mapstructure:"accessKeyID" yaml:"accessKeyID,omitempty"`         // S3_ACCESS_KEY_ID
	SecretAccessKey string `mapstructure:"secretAccessKey" yaml:"secretAccessKey,omitempty"` // S3_SECRET_ACCESS_KEY
	Region          string `mapstructure:"region" yaml:"region"`                             // S3_REGION
}

// MetastoreConfig configures a Hive metastore.
type MetastoreConfig struct {
	URI string `mapstructure:"uri" yaml:"uri,omitempty"` // HIVE_URI
}

// ServerConfig configures the MCP transport.
type ServerConfig struct {
	Transport string `mapstructure:"transport" yaml:"transport"` // MCP_TRANSPORT
	Host      string `mapstructure:"host" yaml:"host"`           // MCP_HOST
	Port      int    `mapstructure:"port" yaml:"port"`           // MCP_PORT
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // LOG_LEVEL
}

const (
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportStreamableHTTP serves MCP over streamable HTTP.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE serves MCP over Server-Sent Events.
	TransportSSE = "sse"
)
