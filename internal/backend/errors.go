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

	icecatalog "github.com/apache/iceberg-go/catalog"
	"github.com/apache/iceberg-go/catalog/rest"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/morristai/iceberg-mcp/internal/catalog"
)

// classify converts a client library error into a *catalog.Error. The kind is
// decided from the error chain; the message prefixes the reason.
func classify(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var ce *catalog.Error
	if errors.As(err, &ce) {
		return ce
	}
	msg := fmt.Sprintf(format, args...)
	return catalog.WrapError(kindOf(err), err, "%s", msg)
}

func kindOf(err error) catalog.ErrorKind {
	switch {
	case errors.Is(err, icecatalog.ErrNoSuchNamespace),
		errors.Is(err, icecatalog.ErrNoSuchTable):
		return catalog.KindNotFound
	case errors.Is(err, rest.ErrBadRequest):
		return catalog.KindInvalidArgument
	case errors.Is(err, rest.ErrServiceUnavailable),
		errors.Is(err, rest.ErrServerError):
		return catalog.KindUnavailable
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.ErrUnexpectedEOF):
		return catalog.KindUnavailable
	}

	var notFound *gluetypes.EntityNotFoundException
	if errors.As(err, &notFound) {
		return catalog.KindNotFound
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && transientStatus(respErr.HTTPStatusCode()) {
		return catalog.KindUnavailable
	}
	var smithyResp *smithyhttp.ResponseError
	if errors.As(err, &smithyResp) && transientStatus(smithyResp.HTTPStatusCode()) {
		return catalog.KindUnavailable
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "EntityNotFoundException":
			return catalog.KindNotFound
		case "ThrottlingException", "InternalServiceException", "OperationTimeoutException":
			return catalog.KindUnavailable
		case "InvalidInputException":
			return catalog.KindInvalidArgument
		}
	}

	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return catalog.KindUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return catalog.KindUnavailable
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return catalog.KindUnavailable
	}

	return catalog.KindInternal
}

func transientStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}
