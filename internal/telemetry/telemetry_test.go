package telemetry

import (
	"context"
	"testing"
)

func TestTracerWithoutSetupIsUsable(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop.span")
	defer span.End()
	if span.SpanContext().IsSampled() {
		t.Error("default provider should not sample spans")
	}
}
