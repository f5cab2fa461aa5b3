package async_test

import (
	"context"
	"testing"
	"time"

	"github.com/immersivevr/immersive/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func wait(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not finish")
		return nil
	}
}

func TestDispatch_Success(t *testing.T) {
	var called bool
	err := wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	}))
	gt.NoError(t, err)
	gt.B(t, called).True()
}

func TestDispatch_Error(t *testing.T) {
	want := goerr.New("boom")
	err := wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
		return want
	}))
	gt.Error(t, err).Is(want)
}

func TestDispatch_Panic(t *testing.T) {
	err := wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
		panic("unexpected")
	}))
	gt.Value(t, err).NotNil()
	gt.String(t, err.Error()).Contains("panic")
}

func TestDispatch_InheritsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := async.Dispatch(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	cancel()

	gt.Error(t, wait(t, ch)).Is(context.Canceled)
}

func TestDispatch_ChannelClosedAfterResult(t *testing.T) {
	ch := async.Dispatch(context.Background(), func(ctx context.Context) error { return nil })
	gt.NoError(t, wait(t, ch))

	_, ok := <-ch
	gt.B(t, ok).False()
}
