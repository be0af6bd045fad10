package container

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

func egg(qty int, q domain.Quality) domain.ItemStack {
	return domain.ItemStack{ItemID: 176, Name: "Egg", Quantity: qty, Quality: q}
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		maxStack     int
		existing     []domain.ItemStack
		add          domain.ItemStack
		wantLeftover int
		wantOccupied int
	}{
		{"empty container", 2, 999, nil, egg(3, domain.QualityBase), 0, 1},
		{"merges into compatible stack", 2, 999, []domain.ItemStack{egg(3, domain.QualityBase)}, egg(2, domain.QualityBase), 0, 1},
		{"different quality takes new slot", 2, 999, []domain.ItemStack{egg(3, domain.QualityBase)}, egg(1, domain.QualityHigh), 0, 2},
		{"full container rejects", 1, 999, []domain.ItemStack{egg(3, domain.QualityBase)}, egg(1, domain.QualityHigh), 1, 1},
		{"full container still merges", 1, 999, []domain.ItemStack{egg(3, domain.QualityBase)}, egg(1, domain.QualityBase), 0, 1},
		{"overflow of stack cap spills to empty slot", 2, 5, []domain.ItemStack{egg(4, domain.QualityBase)}, egg(3, domain.QualityBase), 0, 2},
		{"partial fit leaves container unchanged", 1, 5, []domain.ItemStack{egg(4, domain.QualityBase)}, egg(3, domain.QualityBase), 3, 1},
		{"zero quantity is a no-op", 1, 5, nil, egg(0, domain.QualityBase), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.capacity, tt.maxStack)
			require.True(t, c.Load(tt.existing))
			before := c.Items()

			leftover := c.AddItem(tt.add)

			assert.Equal(t, tt.wantLeftover, leftover)
			assert.Equal(t, tt.wantOccupied, c.OccupiedCount())
			assert.LessOrEqual(t, c.OccupiedCount(), c.Capacity())
			if leftover > 0 {
				assert.Equal(t, tt.add.Quantity, leftover)
				assert.Equal(t, before, c.Items())
			}
		})
	}
}

func TestAddItem_ColorKeepsStacksApart(t *testing.T) {
	c := New(3, 999)
	red := domain.ItemStack{ItemID: 591, Name: "Tulip", Quantity: 1, Color: "red"}
	blue := red
	blue.Color = "blue"

	assert.Equal(t, 0, c.AddItem(red))
	assert.Equal(t, 0, c.AddItem(blue))
	assert.Equal(t, 2, c.OccupiedCount())
}

func TestAddAll_Atomic(t *testing.T) {
	c := New(2, 999)
	require.Equal(t, 0, c.AddItem(egg(1, domain.QualityBase)))

	ok := c.AddAll([]domain.ItemStack{egg(1, domain.QualityHigh), egg(1, domain.QualityMedium)})

	assert.False(t, ok)
	assert.Equal(t, []domain.ItemStack{egg(1, domain.QualityBase)}, c.Items())

	ok = c.AddAll([]domain.ItemStack{egg(1, domain.QualityHigh), egg(4, domain.QualityBase)})
	assert.True(t, ok)
	assert.Equal(t, []domain.ItemStack{egg(5, domain.QualityBase), egg(1, domain.QualityHigh)}, c.Items())
}

func TestPredicates(t *testing.T) {
	c := New(2, 999)
	assert.False(t, c.HasContents())
	assert.False(t, c.IsFull())

	c.AddItem(egg(1, domain.QualityBase))
	assert.True(t, c.HasContents())
	assert.False(t, c.IsFull())

	c.AddItem(egg(1, domain.QualityBest))
	assert.True(t, c.IsFull())
}

func TestLoad_RejectsOverCapacity(t *testing.T) {
	c := New(1, 999)
	assert.False(t, c.Load([]domain.ItemStack{egg(1, domain.QualityBase), egg(1, domain.QualityHigh)}))
}

func TestAddItem_ConcurrentNeverExceedsCapacity(t *testing.T) {
	c := New(36, 999)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			c.AddItem(domain.ItemStack{ItemID: id, Name: "thing", Quantity: 1})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 36, c.OccupiedCount())
}
