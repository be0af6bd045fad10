// Package container implements the bounded slot inventory owned by a collector.
package container

import (
	"sync"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

// Container is a fixed-capacity list of item slots.
// A slot with zero quantity is empty. Adds are all-or-nothing per call.
type Container struct {
	mu       sync.Mutex
	slots    []domain.ItemStack
	maxStack int
}

// New creates an empty container
func New(capacity, maxStack int) *Container {
	if maxStack <= 0 {
		maxStack = 1
	}
	return &Container{
		slots:    make([]domain.ItemStack, capacity),
		maxStack: maxStack,
	}
}

// AddItem places the whole stack, merging into compatible stacks first and then
// filling empty slots in order. It returns the quantity that could not be placed:
// 0 on success, stack.Quantity when the container was left unchanged.
func (c *Container) AddItem(stack domain.ItemStack) int {
	if stack.Quantity <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.clone()
	if !place(next, stack, c.maxStack) {
		return stack.Quantity
	}
	c.slots = next
	return 0
}

// AddAll places every stack or none of them
func (c *Container) AddAll(stacks []domain.ItemStack) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.clone()
	for _, s := range stacks {
		if s.Quantity <= 0 {
			continue
		}
		if !place(next, s, c.maxStack) {
			return false
		}
	}
	c.slots = next
	return true
}

// OccupiedCount returns the number of non-empty slots
func (c *Container) OccupiedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied()
}

// IsFull reports whether every slot is occupied
func (c *Container) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied() >= len(c.slots)
}

// HasContents reports whether any slot is occupied
func (c *Container) HasContents() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied() > 0
}

// Capacity returns the slot count
func (c *Container) Capacity() int {
	return len(c.slots)
}

// Items returns a copy of the occupied slots in slot order
func (c *Container) Items() []domain.ItemStack {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.ItemStack, 0, len(c.slots))
	for _, s := range c.slots {
		if s.Quantity > 0 {
			items = append(items, s)
		}
	}
	return items
}

// Load replaces the contents, used when restoring a world fixture.
// Stacks beyond capacity are rejected.
func (c *Container) Load(stacks []domain.ItemStack) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(stacks) > len(c.slots) {
		return false
	}
	next := make([]domain.ItemStack, len(c.slots))
	copy(next, stacks)
	c.slots = next
	return true
}

func (c *Container) occupied() int {
	n := 0
	for _, s := range c.slots {
		if s.Quantity > 0 {
			n++
		}
	}
	return n
}

func (c *Container) clone() []domain.ItemStack {
	next := make([]domain.ItemStack, len(c.slots))
	copy(next, c.slots)
	return next
}

func place(slots []domain.ItemStack, stack domain.ItemStack, maxStack int) bool {
	remaining := stack.Quantity
	for i := range slots {
		if remaining == 0 {
			break
		}
		if slots[i].Quantity == 0 || !slots[i].CanStackWith(stack) {
			continue
		}
		room := maxStack - slots[i].Quantity
		if room <= 0 {
			continue
		}
		n := min(room, remaining)
		slots[i].Quantity += n
		remaining -= n
	}
	for i := range slots {
		if remaining == 0 {
			break
		}
		if slots[i].Quantity != 0 {
			continue
		}
		n := min(maxStack, remaining)
		slots[i] = stack
		slots[i].Quantity = n
		remaining -= n
	}
	return remaining == 0
}
