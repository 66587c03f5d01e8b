package commands

import (
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/metrics"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// reject records a failed command on its span and in the rejection counter
// and returns err unchanged.
func reject(span trace.Span, err error) error {
	class := errs.ClassOf(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, class.String())
	metrics.RecordRejection(class.String())
	return err
}
