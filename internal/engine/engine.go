// Package engine keeps the basket, favorites, purchase history and recommendation
// slices of the store in step with the remote backend.
//
// Every user action runs as an independent background task bound to the engine's
// lifetime. Remote-confirmed writes touch local state only after the backend reports
// success; failures never propagate and are published as Failure events instead.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go-shop-sync/internal/api"
	"go-shop-sync/internal/catalog"
	"go-shop-sync/internal/config"
	"go-shop-sync/internal/eventpublisher"
	"go-shop-sync/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Services struct {
	Basket          api.BasketService
	Favorites       api.FavoritesService
	Recommendations api.RecommendationService
	Interactions    api.InteractionLogger
}

// NewServices uses one backend client for every remote collaborator.
func NewServices(client *api.Client) Services {
	return Services{
		Basket:          client,
		Favorites:       client,
		Recommendations: client,
		Interactions:    client,
	}
}

type Config struct {
	UserId            string
	ForYouTopK        int
	BasketTopK        int
	ProductDetailTopK int
}

func ConfigFrom(cnf config.Config) Config {
	return Config{
		UserId:            cnf.UserId,
		ForYouTopK:        cnf.ForYouTopK,
		BasketTopK:        cnf.BasketTopK,
		ProductDetailTopK: cnf.ProductDetailTopK,
	}
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIdGenerator(newId func() string) Option {
	return func(e *Engine) { e.newId = newId }
}

type Engine struct {
	store    *store.Store
	catalog  *catalog.Snapshot
	services Services
	cnf      Config
	now      func() time.Time
	newId    func() string

	ctx    context.Context
	cancel context.CancelFunc
	tasks  errgroup.Group

	// commitMu guards closed; every commit and spawn holds it for reading.
	commitMu sync.RWMutex
	closed   bool

	forYouInflight atomic.Int32
	failures       *eventpublisher.Broadcaster[Failure]
}

func New(snapshot *catalog.Snapshot, services Services, cnf Config, opts ...Option) *Engine {
	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		store:    store.New(snapshot),
		catalog:  snapshot,
		services: services,
		cnf:      cnf,
		now:      time.Now,
		newId:    uuid.NewString,
		ctx:      ctx,
		cancel:   cancel,
		failures: eventpublisher.NewBroadcaster[Failure](),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Store() *store.Store {
	return e.store
}

// Start runs the initial synchronization: basket, favorites and basket recommendations.
func (e *Engine) Start() {
	e.LoadBasket()
	e.LoadFavorites()
	e.RefreshBasketSimilar()
}

// Wait blocks until every task spawned so far, and every task those spawn, has finished.
func (e *Engine) Wait() {
	e.tasks.Wait()
}

// Close cancels outstanding tasks and waits for them. Nothing is committed to the
// store once Close has started. It must not be called from inside a task.
func (e *Engine) Close() {
	e.commitMu.Lock()
	if e.closed {
		e.commitMu.Unlock()
		return
	}
	e.closed = true
	e.commitMu.Unlock()

	e.cancel()
	e.tasks.Wait()
	e.failures.Close()
}

func (e *Engine) Subscribe(ch chan<- Failure) {
	e.failures.Subscribe(ch)
}

func (e *Engine) Unsubscribe(ch chan<- Failure) {
	e.failures.Unsubscribe(ch)
}

// spawn runs fn as a tracked background task. It is dropped once the engine is closed.
func (e *Engine) spawn(fn func(ctx context.Context)) {
	e.commitMu.RLock()
	defer e.commitMu.RUnlock()

	if e.closed {
		return
	}
	e.tasks.Go(func() error {
		fn(e.ctx)
		return nil
	})
}

// commit applies fn to the store unless the engine is shutting down.
// fn must only write cells; it must not spawn tasks.
func (e *Engine) commit(fn func()) bool {
	e.commitMu.RLock()
	defer e.commitMu.RUnlock()

	if e.closed || e.ctx.Err() != nil {
		return false
	}
	fn()
	return true
}
