package manager

import (
	"fmt"

	"github.com/cwbudde/algo-attrib/attr/flatten"
	"github.com/cwbudde/algo-attrib/attr/pack"
)

// Accessor returns the (possibly nested) value of an attribute for one object.
type Accessor func(index int) flatten.Node[float64]

// Descriptor declares one attribute column.
type Descriptor struct {
	// Name identifies the attribute, e.g. "instancePositions".
	Name string
	// Size is the number of components per object.
	Size int
	// Instanced marks per-instance (rather than per-vertex) attributes.
	Instanced bool
	// Constant, when set, is flattened once and replicated to every object.
	Constant *flatten.Node[float64]
	// Accessor is called once per object when Constant is nil.
	Accessor Accessor
	// Default supplies missing trailing components of short values.
	// It must be empty (zero fill) or hold Size elements.
	Default []float64
	// Scale multiplies each component after the values are gathered.
	// It must be empty or hold Size elements.
	Scale []float64
	// Format selects the upload encoding returned by Attribute.Bytes.
	Format pack.Format
}

func (d Descriptor) validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidDescriptor)
	case d.Size <= 0:
		return fmt.Errorf("%w: %s: size must be > 0: %d", ErrInvalidDescriptor, d.Name, d.Size)
	case d.Constant == nil && d.Accessor == nil:
		return fmt.Errorf("%w: %s: needs a constant or an accessor", ErrInvalidDescriptor, d.Name)
	case len(d.Default) != 0 && len(d.Default) != d.Size:
		return fmt.Errorf("%w: %s: default has %d components, size is %d", ErrInvalidDescriptor, d.Name, len(d.Default), d.Size)
	case len(d.Scale) != 0 && len(d.Scale) != d.Size:
		return fmt.Errorf("%w: %s: scale has %d components, size is %d", ErrInvalidDescriptor, d.Name, len(d.Scale), d.Size)
	case d.Format.BytesPerComponent() == 0:
		return fmt.Errorf("%w: %s: unknown format %v", ErrInvalidDescriptor, d.Name, d.Format)
	}
	return nil
}
