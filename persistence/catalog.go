package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// errNullCatalog rejects a stored "null", which decodes without error.
var errNullCatalog = errors.New("stored catalog is null")

// EncodeProducts serializes the product sequence.
func EncodeProducts(products []catalog.Product) (string, error) {
	if products == nil {
		products = []catalog.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("failed to encode products: %w", err)
	}
	return string(data), nil
}

// DecodeProducts parses a serialized product sequence.
func DecodeProducts(raw string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	if products == nil {
		return nil, errNullCatalog
	}
	return products, nil
}

// LoadCatalog reads the persisted catalog. A missing, unreadable or
// malformed value yields the default catalog; this never fails.
func LoadCatalog(ctx context.Context, s Store, logger types.Logger) []catalog.Product {
	raw, ok, err := s.Get(ctx, ProductsKey)
	if err != nil {
		logger.Warn("Failed to read catalog, using defaults", "error", err)
		return catalog.DefaultProducts()
	}
	if !ok {
		logger.Info("No persisted catalog, using defaults")
		return catalog.DefaultProducts()
	}

	products, err := DecodeProducts(raw)
	if err != nil {
		logger.Error("Persisted catalog is malformed, using defaults", "error", err)
		return catalog.DefaultProducts()
	}
	return products
}

// LoadHeroImage reads the persisted hero image, falling back to the default.
func LoadHeroImage(ctx context.Context, s Store, logger types.Logger) string {
	raw, ok, err := s.Get(ctx, HeroImageKey)
	if err != nil {
		logger.Warn("Failed to read hero image, using default", "error", err)
		return catalog.DefaultHeroImageURL
	}
	if !ok || raw == "" {
		return catalog.DefaultHeroImageURL
	}
	return raw
}

// Writer persists catalog state in the background. Failed writes are
// logged and dropped. When several writes to one key are pending only
// the newest one reaches the store.
type Writer struct {
	store   Store
	logger  types.Logger
	timeout time.Duration

	mu      sync.Mutex
	seq     map[string]uint64
	writeMu sync.Mutex
	wg      sync.WaitGroup
}

// NewWriter creates a Writer; each write is bounded by timeout.
func NewWriter(s Store, logger types.Logger, timeout time.Duration) *Writer {
	return &Writer{
		store:   s,
		logger:  logger,
		timeout: timeout,
		seq:     make(map[string]uint64),
	}
}

// SaveCatalog schedules a write of the product sequence.
func (w *Writer) SaveCatalog(products []catalog.Product) {
	raw, err := EncodeProducts(products)
	if err != nil {
		w.logger.Error("Failed to encode catalog, not saved", "error", err)
		return
	}
	w.save(ProductsKey, raw)
}

// SaveHeroImage schedules a write of the hero image URL.
func (w *Writer) SaveHeroImage(url string) {
	w.save(HeroImageKey, url)
}

// Wait blocks until every scheduled write has finished.
func (w *Writer) Wait() {
	w.wg.Wait()
}

func (w *Writer) save(key, value string) {
	w.mu.Lock()
	w.seq[key]++
	seq := w.seq[key]
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.writeMu.Lock()
		defer w.writeMu.Unlock()

		w.mu.Lock()
		stale := w.seq[key] != seq
		w.mu.Unlock()
		if stale {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()
		if err := w.store.Set(ctx, key, value); err != nil {
			w.logger.Warn("Failed to persist value", "key", key, "error", err)
		}
	}()
}
