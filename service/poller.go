package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/thingsconsole/client"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
)

// FetchFunc loads the current inventory.
type FetchFunc func(ctx context.Context) ([]model.InventoryItem, error)

// ThingSearcher is the part of the client the inventory poller needs.
type ThingSearcher interface {
	SearchThings(ctx context.Context, offset, count int, opts ...client.QueryOption) (*client.Result[model.SearchResult], error)
}

// IInventory is the console's view of the inventory poller.
type IInventory interface {
	Snapshot() Snapshot
	Refresh(ctx context.Context) error
	Running() bool
}

// Snapshot is the latest applied inventory.
type Snapshot struct {
	Items     []model.InventoryItem `json:"items"`
	Sequence  uint64                `json:"sequence"`
	UpdatedAt time.Time             `json:"updatedAt"`
	LastError string                `json:"lastError,omitempty"`
}

// maxInFlight bounds the fetches started by ticks; a tick is skipped while
// that many are still running.
const maxInFlight = 4

// Poller refreshes the inventory on a fixed interval. Fetches may overlap and
// race; every fetch gets a sequence number and a result older than the last
// applied one is dropped. Stop cancels whatever is still in flight.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration

	mu       sync.Mutex
	issued   uint64
	applied  uint64
	inFlight int
	snapshot Snapshot
	stop     context.CancelFunc
	wg       sync.WaitGroup
}

func NewPoller(fetch FetchFunc, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{fetch: fetch, interval: interval, snapshot: Snapshot{Items: []model.InventoryItem{}}}
}

// NewInventoryPoller pages through the search endpoint until the service
// reports no next page.
func NewInventoryPoller(searcher ThingSearcher, pageSize int, fields []string, interval time.Duration) *Poller {
	if pageSize <= 0 {
		pageSize = 200
	}
	var opts []client.QueryOption
	if len(fields) > 0 {
		opts = append(opts, client.WithFields(fields...))
	}
	return NewPoller(func(ctx context.Context) ([]model.InventoryItem, error) {
		items := []model.InventoryItem{}
		offset := 0
		for {
			result, err := searcher.SearchThings(ctx, offset, pageSize, opts...)
			if err != nil {
				return nil, err
			}
			for _, thing := range result.Body.Items {
				items = append(items, thing.InventoryItem())
			}
			next := result.Body.NextPageOffset
			if next == nil || *next <= offset {
				return items, nil
			}
			offset = *next
		}
	}, interval)
}

// Start polls until ctx is done or Stop is called. The first fetch is issued
// immediately.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.stop != nil {
		p.mu.Unlock()
		return
	}
	ctx, p.stop = context.WithCancel(ctx)
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.spawn(ctx)
		for {
			select {
			case <-ticker.C:
				p.spawn(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	logger.Info("Inventory polling started", zap.Duration("interval", p.interval))
}

// Stop ends polling and waits for outstanding fetches.
func (p *Poller) Stop() {
	p.mu.Lock()
	stop := p.stop
	p.stop = nil
	p.mu.Unlock()
	if stop == nil {
		return
	}
	stop()
	p.wg.Wait()
	logger.Info("Inventory polling stopped")
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// spawn runs a fetch on its own goroutine so a slow response never delays
// the next tick.
func (p *Poller) spawn(ctx context.Context) {
	p.mu.Lock()
	busy := p.inFlight >= maxInFlight
	p.mu.Unlock()
	if busy {
		logger.Debug("Skipping inventory tick, fetches still in flight", zap.Int("inFlight", maxInFlight))
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Inventory refresh failed", zap.Error(err))
		}
	}()
}

// Refresh fetches once and applies the result unless a newer fetch was
// applied meanwhile. It does not cancel fetches already in flight.
func (p *Poller) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.issued++
	seq := p.issued
	p.inFlight++
	p.mu.Unlock()

	items, err := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight--
	if seq <= p.applied {
		logger.Debug("Dropping stale inventory result", zap.Uint64("sequence", seq), zap.Uint64("applied", p.applied))
		return nil
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			p.snapshot.LastError = err.Error()
		}
		return err
	}
	p.applied = seq
	p.snapshot = Snapshot{Items: items, Sequence: seq, UpdatedAt: time.Now().UTC()}
	return nil
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.snapshot
	out.Items = append([]model.InventoryItem{}, p.snapshot.Items...)
	return out
}
