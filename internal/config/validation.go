package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/morristai/iceberg-mcp/internal/catalog"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

var transports = []string{TransportStdio, TransportStreamableHTTP, TransportSSE}

// Validate checks cfg and returns every problem found as ValidationErrors, or
// nil when the configuration is usable.
func Validate(cfg Config) error {
	var errs ValidationErrors

	switch cfg.Catalog.Kind {
	case "":
		errs.Add("catalog.kind", fmt.Sprintf("is required (set CATALOG_KIND to one of %s)", typeList()))
	case catalog.TypeREST:
		validateURL(&errs, "rest.uri", cfg.REST.URI, true)
	case catalog.TypeGlue:
		if strings.TrimSpace(cfg.Glue.Region) == "" {
			errs.Add("glue.region", "is required for the glue catalog")
		}
		if cfg.Glue.Profile == "" && (cfg.Glue.AccessKeyID == "") != (cfg.Glue.SecretAccessKey == "") {
			errs.Add("glue.accessKeyID", "access key id and secret access key must be set together")
		}
		validateURL(&errs, "glue.endpoint", cfg.Glue.Endpoint, false)
	case catalog.TypeHive:
		if cfg.Metastore.URI == "" && cfg.Catalog.Properties["uri"] == "" {
			errs.Add("metastore.uri", "is required for the hive catalog")
		}
	default:
		errs.Add("catalog.kind", fmt.Sprintf("unsupported catalog kind %q (valid: %s)", cfg.Catalog.Kind, typeList()), cfg.Catalog.Kind)
	}

	if strings.TrimSpace(cfg.Catalog.Name) == "" {
		errs.Add("catalog.name", "must not be empty")
	}

	switch cfg.Catalog.PartitionHistory {
	case PartitionHistoryFull, PartitionHistoryDefault:
	default:
		errs.Add("catalog.partitionHistory", fmt.Sprintf("must be %q or %q", PartitionHistoryFull, PartitionHistoryDefault), cfg.Catalog.PartitionHistory)
	}

	validateURL(&errs, "s3.endpoint", cfg.S3.Endpoint, false)

	if !slices.Contains(transports, cfg.Server.Transport) {
		errs.Add("server.transport", fmt.Sprintf("must be one of %s", strings.Join(transports, ", ")), cfg.Server.Transport)
	} else if cfg.Server.Transport != TransportStdio {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			errs.Add("server.port", "must be between 1 and 65535", cfg.Server.Port)
		}
		if strings.TrimSpace(cfg.Server.Host) == "" {
			errs.Add("server.host", "is required for HTTP transports")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateURL(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, "is required")
		}
		return
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs.Add(field, "must be an absolute http or https URL", value)
	}
}

func typeList() string {
	names := make([]string, 0, len(catalog.Types))
	for _, t := range catalog.Types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
