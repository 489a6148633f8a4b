package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"testing"

	icecatalog "github.com/apache/iceberg-go/catalog"
	"github.com/apache/iceberg-go/catalog/rest"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"

	"github.com/morristai/iceberg-mcp/internal/catalog"
)

func awsResponseError(status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
			Err:      errors.New("request failed"),
		},
		RequestID: "req-1",
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind catalog.ErrorKind
	}{
		{"missing namespace", icecatalog.ErrNoSuchNamespace, catalog.KindNotFound},
		{"missing table wrapped", fmt.Errorf("%w: sales.orders", icecatalog.ErrNoSuchTable), catalog.KindNotFound},
		{"glue entity not found", &gluetypes.EntityNotFoundException{Message: aws.String("Database sales not found")}, catalog.KindNotFound},
		{"glue throttling", &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"}, catalog.KindUnavailable},
		{"glue invalid input", &smithy.GenericAPIError{Code: "InvalidInputException", Message: "bad name"}, catalog.KindInvalidArgument},
		{"rest bad request", fmt.Errorf("list tables: %w", rest.ErrBadRequest), catalog.KindInvalidArgument},
		{"rest server error", rest.ErrServerError, catalog.KindUnavailable},
		{"rest service unavailable", rest.ErrServiceUnavailable, catalog.KindUnavailable},
		{"rest unauthorized", rest.ErrUnauthorized, catalog.KindInternal},
		{"rest other status", rest.ErrRESTError, catalog.KindInternal},
		{"cancelled", context.Canceled, catalog.KindUnavailable},
		{"deadline", fmt.Errorf("load: %w", context.DeadlineExceeded), catalog.KindUnavailable},
		{"connection refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, catalog.KindUnavailable},
		{"url error", &url.Error{Op: "Get", URL: "http://catalog:8181/v1/config", Err: errors.New("no such host")}, catalog.KindUnavailable},
		{"truncated body", io.ErrUnexpectedEOF, catalog.KindUnavailable},
		{"request send", &smithyhttp.RequestSendError{Err: errors.New("dial tcp: i/o timeout")}, catalog.KindUnavailable},
		{"aws 503", awsResponseError(http.StatusServiceUnavailable), catalog.KindUnavailable},
		{"aws 429", awsResponseError(http.StatusTooManyRequests), catalog.KindUnavailable},
		{"aws 403", awsResponseError(http.StatusForbidden), catalog.KindInternal},
		{"anything else", errors.New("unexpected metadata"), catalog.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err, "load table %s", "sales.orders")

			var ce *catalog.Error
			if assert.ErrorAs(t, err, &ce) {
				assert.Equal(t, tt.kind, ce.Kind)
				assert.Contains(t, ce.Reason, "load table sales.orders")
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestClassifyKeepsCatalogErrors(t *testing.T) {
	orig := catalog.NewError(catalog.KindNotFound, "table sales.orders does not exist")
	assert.Same(t, orig, classify(orig, "ignored"))
	assert.NoError(t, classify(nil, "ignored"))
}
