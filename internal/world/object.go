package world

import (
	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

// Role is an explicit capability tag on a placed object
type Role int

const (
	RoleNone Role = iota
	RoleCollector
)

// Object is a placed object on a tile
type Object struct {
	ItemID       int
	Name         string
	Stack        int
	Quality      domain.Quality
	Role         Role
	BigCraftable bool
	Forage       bool    // the world marks the object as forage-category
	Held         *Object // produce waiting inside a machine
	Pot          *Soil   // soil carried by an indoor pot

	// Container is owned by collectors for their whole lifetime
	Container *container.Container
	// ShowContents is the visible-contents flag of a collector
	ShowContents bool
}

// IsCollector reports whether the object is a collector with a container
func (o *Object) IsCollector() bool {
	return o != nil && o.Role == RoleCollector && o.Container != nil
}

// AsStack converts the object into an item stack
func (o *Object) AsStack() domain.ItemStack {
	stack := o.Stack
	if stack <= 0 {
		stack = 1
	}
	return domain.ItemStack{
		ItemID:   o.ItemID,
		Name:     o.Name,
		Quantity: stack,
		Quality:  o.Quality,
	}
}

// RefreshContentsFlag sets ShowContents when the container holds anything
func (o *Object) RefreshContentsFlag() {
	if o.IsCollector() && o.Container.HasContents() {
		o.ShowContents = true
	}
}
