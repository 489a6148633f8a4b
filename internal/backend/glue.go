package backend

import (
	"context"

	"github.com/apache/iceberg-go/catalog/glue"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// NewGlue opens the AWS Glue catalog. A named profile takes precedence over
// static keys; with neither, the default AWS credential chain is used.
// glue.warehouse only locates new tables, so the read-only adapter ignores it.
func NewGlue(ctx context.Context, cfg config.Config) (catalog.Catalog, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.Glue)
	if err != nil {
		return nil, classify(err, "load AWS configuration")
	}

	client := glue.NewCatalog(glue.WithAwsConfig(awsCfg))

	return NewAdapter(catalog.TypeGlue, client, fullHistory(cfg), storageProperties(cfg)), nil
}

func loadAWSConfig(ctx context.Context, gc config.GlueConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(gc.Region),
	}

	switch {
	case gc.Profile != "":
		logging.Debug("Backend", "Using AWS profile %s", gc.Profile)
		opts = append(opts, awsconfig.WithSharedConfigProfile(gc.Profile))
	case gc.AccessKeyID != "" && gc.SecretAccessKey != "":
		logging.Debug("Backend", "Using static AWS credentials")
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(gc.AccessKeyID, gc.SecretAccessKey, ""),
		))
	default:
		logging.Debug("Backend", "Using the default AWS credential chain")
	}

	if gc.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(gc.Endpoint))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
