package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestStore_AddAssignsIDAndSyncsImages(t *testing.T) {
	s := NewStore(nil, DefaultHeroImageURL, WithClock(fixedClock(1_700_000_000_123)))

	p := s.Add(Draft{
		Name:        "D-Cut Bag",
		Description: "Carry bag",
		Category:    "Carry Bags",
		ImageURL:    "data:image/png;base64,AAAA",
		Variants: []Variant{
			{ID: "w", Color: "White", Size: "500g", Price: 250, ImageURL: "old.png"},
			{ID: "b", Color: "Black", Size: "500g", Price: 160},
		},
	})

	assert.Equal(t, int64(1_700_000_000_123), p.ID)
	for _, v := range p.Variants {
		assert.Equal(t, "data:image/png;base64,AAAA", v.ImageURL)
	}

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, p, all[0])
}

func TestStore_AddDefaultsPlaceholder(t *testing.T) {
	s := NewStore(nil, "")

	p := s.Add(Draft{
		Name: "Mesh Bag", Description: "Produce", Category: "Sacks",
		Variants: []Variant{{ID: "a", Price: 5}},
	})

	assert.Equal(t, PlaceholderImageURL, p.ImageURL)
	assert.Equal(t, PlaceholderImageURL, p.Variants[0].ImageURL)
}

func TestStore_UpdateSyncsImages(t *testing.T) {
	s := NewStore(DefaultProducts(), DefaultHeroImageURL)

	p, err := s.Get(2)
	require.NoError(t, err)
	p.ImageURL = "new-main.png"
	p.Variants[0].ImageURL = "stale.png"

	updated, err := s.Update(p)
	require.NoError(t, err)
	for _, v := range updated.Variants {
		assert.Equal(t, "new-main.png", v.ImageURL)
	}

	stored, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	_, err = s.Update(Product{ID: 999})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStore_Remove(t *testing.T) {
	s := NewStore(DefaultProducts(), DefaultHeroImageURL)

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.Len(t, s.All(), 5)

	_, err := s.Get(3)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore(DefaultProducts(), DefaultHeroImageURL)

	p, err := s.Get(1)
	require.NoError(t, err)
	p.Variants[0].Price = 0
	p.Name = "changed"

	again, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "PP Woven Sack", again.Name)
	assert.Equal(t, 18.0, again.Variants[0].Price)
}

func TestStore_HeroImage(t *testing.T) {
	s := NewStore(nil, DefaultHeroImageURL)
	assert.Equal(t, DefaultHeroImageURL, s.HeroImage())

	s.SetHeroImage("banner.jpg")
	assert.Equal(t, "banner.jpg", s.HeroImage())
}
