package async

import (
	"context"
	"fmt"

	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatch executes handler on a new goroutine. The handler inherits ctx,
// including its logger and cancellation. The returned channel receives the
// handler's result exactly once; a panic is recovered and delivered as an
// error.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logging.From(ctx).Error("panic in async handler", "panic", r)
				done <- goerr.New("panic in async handler", goerr.V("panic", fmt.Sprint(r)))
			}
		}()

		err := handler(ctx)
		if err != nil {
			logging.From(ctx).Warn("async handler failed", "error", err)
		}
		done <- err
	}()

	return done
}
