package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
	"github.com/go-playground/validator/v10"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/persistence"
	"github.com/rohit-kumar-in/Arvind-Trader/validation"
)

// BucketName is the kv-jetstream bucket holding the catalog.
const BucketName = "storefront"

const defaultWriteTimeout = 5 * time.Second

// CatalogModule owns the catalog store and persists it through a
// key-value backend. Without an explicit backend it uses the "kv" plugin.
type CatalogModule struct {
	logger    types.Logger
	kv        *kvjetstream.PluginModule
	persist   persistence.Store
	writer    *persistence.Writer
	store     *domain.Store
	storeOpts []domain.StoreOption
	validate  *validator.Validate
	eventBus  mono.EventBus

	// editMu orders each edit with the save of the catalog it produced,
	// so the last save scheduled is always the newest catalog.
	editMu sync.Mutex

	mu          sync.Mutex
	browse      map[string]*browseSession
	idleTimeout time.Duration
	now         func() time.Time

	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// browseSession is a shopper's listing state and when it was last used.
type browseSession struct {
	domain.Browse
	touched time.Time
}

// DefaultIdleTimeout is how long an unused listing state is kept.
const DefaultIdleTimeout = 24 * time.Hour

// Compile-time interface checks
var (
	_ mono.Module                = (*CatalogModule)(nil)
	_ mono.ServiceProviderModule = (*CatalogModule)(nil)
	_ mono.UsePluginModule       = (*CatalogModule)(nil)
	_ mono.EventEmitterModule    = (*CatalogModule)(nil)
	_ mono.HealthCheckableModule = (*CatalogModule)(nil)
)

// Option configures the catalog module.
type Option func(*CatalogModule)

// WithPersistence uses s instead of the kv plugin bucket.
func WithPersistence(s persistence.Store) Option {
	return func(m *CatalogModule) {
		m.persist = s
	}
}

// WithIdleTimeout changes how long an unused listing state is kept.
func WithIdleTimeout(d time.Duration) Option {
	return func(m *CatalogModule) {
		if d > 0 {
			m.idleTimeout = d
		}
	}
}

// WithStoreOptions passes options through to the catalog store.
func WithStoreOptions(opts ...domain.StoreOption) Option {
	return func(m *CatalogModule) {
		m.storeOpts = append(m.storeOpts, opts...)
	}
}

// NewModule creates a new catalog module.
func NewModule(logger types.Logger, opts ...Option) *CatalogModule {
	m := &CatalogModule{
		logger:   logger.WithModule("catalog"),
		validate: validation.New(),
		browse:      make(map[string]*browseSession),
		idleTimeout: DefaultIdleTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *CatalogModule) Name() string {
	return "catalog"
}

// SetPlugin receives the KV plugin from the framework.
func (m *CatalogModule) SetPlugin(alias string, plugin mono.PluginModule) {
	if alias != "kv" {
		return
	}
	kv, ok := plugin.(*kvjetstream.PluginModule)
	if !ok {
		m.logger.Error("Invalid plugin type for kv",
			"alias", alias,
			"expected", "*kvjetstream.PluginModule")
		return
	}
	m.kv = kv
}

// SetEventBus receives the EventBus from the framework.
func (m *CatalogModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *CatalogModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ProductSavedV1.ToBase(),
		events.ProductRemovedV1.ToBase(),
		events.HeroImageChangedV1.ToBase(),
	}
}

// RegisterServices registers the catalog request-reply services.
func (m *CatalogModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-products", json.Unmarshal, json.Marshal, m.listProducts,
	); err != nil {
		return fmt.Errorf("failed to register list-products service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-product", json.Unmarshal, json.Marshal, m.getProduct,
	); err != nil {
		return fmt.Errorf("failed to register get-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "select-variant", json.Unmarshal, json.Marshal, m.selectVariant,
	); err != nil {
		return fmt.Errorf("failed to register select-variant service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "add-product", json.Unmarshal, json.Marshal, m.addProduct,
	); err != nil {
		return fmt.Errorf("failed to register add-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-product", json.Unmarshal, json.Marshal, m.updateProduct,
	); err != nil {
		return fmt.Errorf("failed to register update-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove-product", json.Unmarshal, json.Marshal, m.removeProduct,
	); err != nil {
		return fmt.Errorf("failed to register remove-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-hero-image", json.Unmarshal, json.Marshal, m.getHeroImage,
	); err != nil {
		return fmt.Errorf("failed to register get-hero-image service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "set-hero-image", json.Unmarshal, json.Marshal, m.setHeroImage,
	); err != nil {
		return fmt.Errorf("failed to register set-hero-image service: %w", err)
	}

	m.logger.Info("Registered services",
		"services", "list-products, get-product, select-variant, add-product, update-product, remove-product, get-hero-image, set-hero-image")
	return nil
}

// Start loads the catalog from persistence. Missing or malformed data
// falls back to the default catalog.
func (m *CatalogModule) Start(ctx context.Context) error {
	if m.persist == nil {
		if m.kv == nil {
			return fmt.Errorf("required plugin 'kv' not registered")
		}
		bucket := m.kv.Bucket(BucketName)
		if bucket == nil {
			return fmt.Errorf("bucket '%s' not found in KV plugin", BucketName)
		}
		m.persist = persistence.NewJetStreamStore(bucket)
	}

	products := persistence.LoadCatalog(ctx, m.persist, m.logger)
	hero := persistence.LoadHeroImage(ctx, m.persist, m.logger)
	m.store = domain.NewStore(products, hero, m.storeOpts...)
	m.writer = persistence.NewWriter(m.persist, m.logger, defaultWriteTimeout)

	m.stopChan = make(chan struct{})
	m.doneChan = make(chan struct{})
	go m.expireIdle()

	m.logger.Info("Catalog module started", "products", len(products))
	return nil
}

// Stop ends the idle sweeper and waits for pending persistence writes.
func (m *CatalogModule) Stop(ctx context.Context) error {
	if m.stopChan != nil {
		m.stopOnce.Do(func() {
			close(m.stopChan)
		})
		select {
		case <-m.doneChan:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if m.writer != nil {
		m.writer.Wait()
	}
	m.logger.Info("Catalog module stopped")
	return nil
}

// expireIdle drops listing states unused for longer than the idle timeout.
func (m *CatalogModule) expireIdle() {
	ticker := time.NewTicker(max(m.idleTimeout/4, time.Minute))
	defer ticker.Stop()
	defer close(m.doneChan)

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			if n := m.sweepBrowse(); n > 0 {
				m.logger.Debug("Expired idle listing states", "count", n)
			}
		}
	}
}

// sweepBrowse forgets listing states idle past the timeout.
func (m *CatalogModule) sweepBrowse() int {
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.browse {
		if s.touched.Before(cutoff) {
			delete(m.browse, id)
			removed++
		}
	}
	return removed
}

// Health reports whether the catalog is loaded.
func (m *CatalogModule) Health(_ context.Context) mono.HealthStatus {
	if m.store == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "catalog not loaded",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"products": len(m.store.All()),
		},
	}
}
