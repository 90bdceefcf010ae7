package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/opkit/fileops/internal/fileops"
	"github.com/opkit/fileops/internal/logging"
	"github.com/opkit/fileops/internal/monitoring"
	"github.com/opkit/fileops/internal/registry"
	"github.com/opkit/fileops/internal/types"
)

// Dispatcher is the single entry point for operation invocations. It
// validates arguments against the operation's declared schema, routes to
// the handler, and normalizes every outcome (including panics) into a
// Result. No fault escapes Invoke.
type Dispatcher struct {
	registry *registry.Registry
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// New creates a dispatcher. metrics may be nil.
func New(reg *registry.Registry, logger *logging.Logger, metrics *monitoring.Metrics) *Dispatcher {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Dispatcher{registry: reg, logger: logger, metrics: metrics}
}

// Invoke executes one operation against an argument bag and returns exactly
// one Result.
func (d *Dispatcher) Invoke(ctx context.Context, operation string, args map[string]interface{}) types.Result {
	start := time.Now()
	result := d.invoke(ctx, operation, args)
	if d.metrics != nil {
		d.metrics.Observe(operation, result.Success, time.Since(start))
	}
	return result
}

func (d *Dispatcher) invoke(ctx context.Context, operation string, args map[string]interface{}) types.Result {
	op, ok := d.registry.Lookup(operation)
	if !ok {
		return types.Fail(fmt.Sprintf("Unknown operation: %s", operation))
	}

	// Required fields are checked before the handler runs, so a rejected
	// invocation has zero side effects.
	for _, param := range op.Parameters {
		if param.Required && stringArg(args, param.Name) == "" {
			return types.Fail(fmt.Sprintf("%s required for %s", param.Name, operation))
		}
	}

	output, err := d.run(ctx, op, buildRequest(args))
	if err != nil {
		var opErr *fileops.OpError
		if errors.As(err, &opErr) {
			return types.Fail(opErr.Message)
		}
		d.logger.Warn("operation failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return types.Fail(fmt.Sprintf("File operation '%s' failed: %v", operation, err))
	}

	d.logger.Debug("operation completed", zap.String("operation", operation))
	return types.Ok(output)
}

// run calls the handler with a recover barrier so a panicking handler
// surfaces as an error instead of tearing down the invocation loop.
func (d *Dispatcher) run(ctx context.Context, op registry.Operation, req fileops.Request) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panic",
				zap.String("operation", op.Name),
				zap.Any("panic", r),
			)
			err = fmt.Errorf("%v", r)
		}
	}()
	return op.Handler(ctx, req)
}

// buildRequest coerces the untyped argument bag into a typed request,
// applying the schema defaults (recursive=false, show_hidden=false).
func buildRequest(args map[string]interface{}) fileops.Request {
	return fileops.Request{
		Path:        stringArg(args, "path"),
		Destination: stringArg(args, "destination"),
		Pattern:     stringArg(args, "pattern"),
		Permissions: stringArg(args, "permissions"),
		Recursive:   boolArg(args, "recursive"),
		ShowHidden:  boolArg(args, "show_hidden"),
	}
}

func stringArg(args map[string]interface{}, name string) string {
	v, _ := args[name].(string)
	return v
}

func boolArg(args map[string]interface{}, name string) bool {
	v, _ := args[name].(bool)
	return v
}
