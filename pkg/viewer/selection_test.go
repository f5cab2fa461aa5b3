package viewer_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/domain/types"
	"github.com/immersivevr/immersive/pkg/viewer"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func catalogRecords() []*model.ModelRecord {
	return []*model.ModelRecord{
		{ID: 1, Title: "Vintage Camera", Kind: types.ModelKindModel, Color: "#8B5CF6", IsActive: true},
		{ID: 2, Title: "Space Explorer", Kind: types.ModelKindModel, Color: "#06B6D4", IsActive: true},
		{ID: 3, Title: "VR Headset Pro", Kind: types.ModelKindModel, Color: "#6366F1", IsActive: true},
		{ID: 4, Title: "Museum Gallery", Kind: types.ModelKindTour, Color: "#F59E0B", IsActive: true},
	}
}

// listerMock fails the first `failures` calls and then returns records
type listerMock struct {
	records  []*model.ModelRecord
	failures int32
	calls    atomic.Int32
	block    chan struct{}
}

func (m *listerMock) ListModels(ctx context.Context) ([]*model.ModelRecord, error) {
	n := m.calls.Add(1)
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if n <= m.failures {
		return nil, goerr.New("Failed to fetch models")
	}
	return m.records, nil
}

func waitLoaded(t *testing.T, sel *viewer.Selection) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = sel.Wait(ctx)
}

func TestSelection_LoadReady(t *testing.T) {
	lister := &listerMock{records: catalogRecords()}
	sel := viewer.NewSelection(lister)
	gt.Value(t, sel.Status()).Equal(viewer.LoadPending)
	gt.Value(t, sel.Focused()).Nil()

	sel.Load(context.Background())
	sel.Load(context.Background())
	waitLoaded(t, sel)

	gt.Value(t, sel.Status()).Equal(viewer.LoadReady)
	gt.NoError(t, sel.Err())
	gt.Array(t, sel.Records()).Length(4)
	gt.Value(t, lister.calls.Load()).Equal(int32(1))

	// nothing focused until the user picks
	gt.Value(t, sel.Focused()).Nil()

	// Load after ready is a no-op
	sel.Load(context.Background())
	gt.B(t, sel.Poll()).False()
	gt.Value(t, lister.calls.Load()).Equal(int32(1))
}

func TestSelection_FailureAndRetry(t *testing.T) {
	lister := &listerMock{records: catalogRecords(), failures: 1}
	sel := viewer.NewSelection(lister)

	gt.B(t, sel.Retry(context.Background())).False()

	sel.Load(context.Background())
	waitLoaded(t, sel)
	gt.Value(t, sel.Status()).Equal(viewer.LoadFailed)
	gt.Value(t, sel.Err()).NotNil()
	gt.Array(t, sel.Records()).Length(0)

	gt.B(t, sel.Retry(context.Background())).True()
	gt.Value(t, sel.Status()).Equal(viewer.LoadPending)
	gt.B(t, sel.Retry(context.Background())).False()

	waitLoaded(t, sel)
	gt.Value(t, sel.Status()).Equal(viewer.LoadReady)
	gt.NoError(t, sel.Err())
	gt.Array(t, sel.Records()).Length(4)
	gt.Value(t, lister.calls.Load()).Equal(int32(2))
}

func TestSelection_PollDoesNotBlock(t *testing.T) {
	lister := &listerMock{records: catalogRecords(), block: make(chan struct{})}
	sel := viewer.NewSelection(lister)
	sel.Load(context.Background())

	gt.B(t, sel.Poll()).False()
	gt.Value(t, sel.Status()).Equal(viewer.LoadPending)

	close(lister.block)
	deadline := time.Now().Add(5 * time.Second)
	for !sel.Poll() {
		if time.Now().After(deadline) {
			t.Fatal("fetch did not complete")
		}
		time.Sleep(time.Millisecond)
	}
	gt.Value(t, sel.Status()).Equal(viewer.LoadReady)
}

func TestSelection_CanceledFetchFails(t *testing.T) {
	lister := &listerMock{block: make(chan struct{})}
	sel := viewer.NewSelection(lister)

	ctx, cancel := context.WithCancel(context.Background())
	sel.Load(ctx)
	cancel()

	waitLoaded(t, sel)
	gt.Value(t, sel.Status()).Equal(viewer.LoadFailed)
	gt.Error(t, sel.Err()).Is(context.Canceled)
}

func TestSelection_EmptyCatalog(t *testing.T) {
	sel := viewer.NewSelection(&listerMock{})
	sel.Load(context.Background())
	waitLoaded(t, sel)

	gt.Value(t, sel.Status()).Equal(viewer.LoadReady)
	gt.B(t, sel.Records() != nil).True()
	gt.Array(t, sel.Records()).Length(0)
}

func TestSelection_SelectAndSubscribe(t *testing.T) {
	sel := viewer.NewSelection(&listerMock{})
	records := catalogRecords()

	var got []string
	unsubscribe := sel.Subscribe(func(r *model.ModelRecord) {
		got = append(got, r.Title)
	})

	sel.Select(records[0])
	sel.Select(records[3])
	gt.Value(t, sel.Focused()).Equal(records[3])
	gt.Value(t, got).Equal([]string{"Vintage Camera", "Museum Gallery"})

	// nil never returns to idle
	sel.Select(nil)
	gt.Value(t, sel.Focused()).Equal(records[3])
	gt.Array(t, got).Length(2)

	unsubscribe()
	unsubscribe()
	sel.Select(records[1])
	gt.Array(t, got).Length(2)
	gt.Value(t, sel.Focused()).Equal(records[1])
}

func TestLoadStatus_String(t *testing.T) {
	gt.Value(t, viewer.LoadPending.String()).Equal("pending")
	gt.Value(t, viewer.LoadReady.String()).Equal("ready")
	gt.Value(t, viewer.LoadFailed.String()).Equal("failed")
}
