package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dcutBag() (catalog.Product, catalog.Variant, catalog.Variant) {
	p := catalog.DefaultProducts()[1]
	return p, p.Variants[0], p.Variants[1]
}

func TestStore_AddMergesSameKey(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()

	for _, q := range []int{1, 3, 2} {
		s.Add(p, white, q)
	}

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2-dc-white-500", items[0].Key)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestStore_AddDistinctVariants(t *testing.T) {
	s := NewStore()
	p, white, black := dcutBag()

	s.Add(p, white, 1)
	s.Add(p, black, 2)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, Key(p.ID, white.ID), items[0].Key)
	assert.Equal(t, Key(p.ID, black.ID), items[1].Key)
	assert.Equal(t, 3, s.ItemCount())
}

func TestStore_AddNonPositiveQuantity(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()

	line := s.Add(p, white, 0)
	assert.Equal(t, 1, line.Quantity)
}

func TestStore_UpdateQuantity(t *testing.T) {
	p, white, black := dcutBag()
	key := Key(p.ID, white.ID)

	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{"absolute set", 7, 2, 7},
		{"zero removes", 0, 1, 0},
		{"negative removes", -4, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Add(p, white, 3)
			s.Add(p, black, 1)

			s.UpdateQuantity(key, tt.quantity)

			items := s.Items()
			assert.Len(t, items, tt.wantLines)
			if tt.wantQty > 0 {
				assert.Equal(t, tt.wantQty, items[0].Quantity)
			}
			for _, it := range items {
				assert.Positive(t, it.Quantity)
			}
		})
	}
}

func TestStore_UnknownKeysAreNoOps(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()
	s.Add(p, white, 2)

	calls := 0
	s.Subscribe(func(Snapshot) { calls++ })

	s.UpdateQuantity("missing", 5)
	s.Remove("missing")

	assert.Equal(t, 2, s.ItemCount())
	assert.Zero(t, calls)
}

func TestStore_TotalAndCount(t *testing.T) {
	s := NewStore()
	assert.Zero(t, s.Total())
	assert.Zero(t, s.ItemCount())

	p, white, black := dcutBag()
	s.Add(p, white, 2)
	s.Add(p, black, 3)

	assert.Equal(t, 250.0*2+160.0*3, s.Total())
	assert.Equal(t, s.Total(), s.Total())
	assert.Equal(t, 5, s.ItemCount())

	s.Clear()
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Total())
}

func TestStore_TotalIsNotRounded(t *testing.T) {
	s := NewStore()
	p := catalog.Product{ID: 9}
	a, b := 0.1, 0.2
	s.Add(p, catalog.Variant{ID: "a", Price: a}, 1)
	s.Add(p, catalog.Variant{ID: "b", Price: b}, 1)

	assert.Equal(t, a+b, s.Total())
	assert.NotEqual(t, 0.3, s.Total())
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()
	s.Add(p, white, 1)

	// A later catalog edit does not reach the cart line.
	p.Name = "Renamed"
	white.Price = 1

	line := s.Items()[0]
	assert.Equal(t, "Non-Woven D-Cut Bag", line.Product.Name)
	assert.Equal(t, 250.0, line.Variant.Price)

	// Neither can a caller rewriting what the cart hands out.
	items := s.Items()
	items[0].Product.Variants[0].Price = 999
	items[0].Product.Name = "Changed"
	s.Snapshot().Items[0].Product.Variants[1].Price = 999
	s.Add(p, white, 1).Product.Variants[0].Price = 999

	line = s.Items()[0]
	assert.Equal(t, "Non-Woven D-Cut Bag", line.Product.Name)
	assert.Equal(t, 250.0, line.Product.Variants[0].Price)
	assert.Equal(t, 160.0, line.Product.Variants[1].Price)
}

func TestStore_Drain(t *testing.T) {
	s := NewStore()
	p, white, black := dcutBag()
	s.Add(p, white, 2)
	s.Add(p, black, 1)

	var seen []int
	s.Subscribe(func(snap Snapshot) { seen = append(seen, snap.ItemCount) })

	snap := s.Drain()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 3, snap.ItemCount)
	assert.Equal(t, 250.0*2+160.0, snap.Total)
	assert.Empty(t, s.Items())
	assert.Equal(t, []int{0}, seen)

	// Draining an empty cart changes nothing.
	assert.Empty(t, s.Drain().Items)
	assert.Equal(t, []int{0}, seen)
}

func TestStore_DrainWithConcurrentAdds(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		drained int
	)
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Add(p, white, 1)
		}()
		go func() {
			defer wg.Done()
			n := s.Drain().ItemCount
			mu.Lock()
			drained += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Every added unit is either in a drained snapshot or still in the cart.
	assert.Equal(t, 50, drained+s.ItemCount())
}

func TestStore_SubscribersSeeEveryMutation(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()

	var seen []int
	s.Subscribe(func(snap Snapshot) { seen = append(seen, snap.ItemCount) })

	s.Add(p, white, 2)
	s.UpdateQuantity(Key(p.ID, white.ID), 5)
	s.Remove(Key(p.ID, white.ID))
	s.Clear()

	assert.Equal(t, []int{2, 5, 0, 0}, seen)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := NewStore()
	p, white, _ := dcutBag()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(p, white, 2)
		}()
	}
	wg.Wait()

	require.Len(t, s.Items(), 1)
	assert.Equal(t, 100, s.ItemCount())
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrStoreNotProvided)

	s := NewStore()
	got, err := FromContext(WithStore(context.Background(), s))
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestSessions(t *testing.T) {
	created := 0
	r := NewSessions(func(string, *Store) { created++ })

	a := r.Get("alice")
	assert.Same(t, a, r.Get("alice"))
	assert.NotSame(t, a, r.Get("bob"))
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, r.Len())

	got, err := FromContext(r.Provide(context.Background(), "alice"))
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestSessions_SweepEvictsIdle(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	r := NewSessions(nil)
	r.now = func() time.Time { return now }

	idle := r.Get("idle")
	r.Get("active")

	now = now.Add(20 * time.Minute)
	r.Get("active")

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep(30*time.Minute))
	assert.Equal(t, 1, r.Len())

	// An evicted shopper comes back to a fresh cart.
	assert.NotSame(t, idle, r.Get("idle"))
	assert.Zero(t, r.Sweep(30*time.Minute))
}
