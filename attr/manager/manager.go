// Package manager prepares per-object attribute arrays for a layer.
//
// A Manager owns a set of attribute columns. Constant attributes are
// flattened once and tiled across all objects with buffer.Replicate;
// accessor-driven attributes flatten each object's nested value into a
// reused accumulator. Invalidated attributes are recomputed in the order they
// were invalidated on the next Update.
//
// A Manager is not safe for concurrent use.
package manager

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-attrib/attr/buffer"
	"github.com/cwbudde/algo-attrib/attr/core"
	"github.com/cwbudde/algo-attrib/attr/flatten"
)

var valuePool = buffer.NewPool[float64]()

// Option configures a Manager.
type Option func(*Manager)

// WithLogger overrides the package logger for one Manager.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithPrepareOptions applies shared preparation settings.
func WithPrepareOptions(opts ...core.PrepareOption) Option {
	return func(m *Manager) {
		m.cfg = core.ApplyPrepareOptions(opts...)
	}
}

// Manager prepares the attribute arrays of one layer.
type Manager struct {
	id  string
	cfg core.PrepareConfig
	log *zap.Logger

	attrs   map[string]*Attribute
	order   []*Attribute
	pending *queue.Queue

	numInstances int
	needsRedraw  bool

	flattener flatten.Flattener[float64, float64]
	scratch   []float64
	staging   []float64
	scale     []float64
}

// New returns an empty Manager. id identifies the owning layer in logs.
func New(id string, opts ...Option) *Manager {
	m := &Manager{
		id:      id,
		cfg:     core.DefaultPrepareConfig(),
		attrs:   make(map[string]*Attribute),
		pending: queue.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.log == nil {
		m.log = Logger()
	}
	m.log = m.log.With(zap.String("layer", id))
	m.flattener = flatten.Flattener[float64, float64]{
		Map:      func(v float64) float64 { return v },
		MaxDepth: m.cfg.MaxDepth,
	}
	return m
}

// ID returns the layer id the manager was created with.
func (m *Manager) ID() string { return m.id }

// NumInstances returns the object count of the last Update.
func (m *Manager) NumInstances() int { return m.numInstances }

// Add registers a per-vertex attribute.
func (m *Manager) Add(d Descriptor) error {
	d.Instanced = false
	return m.add(d)
}

// AddInstanced registers a per-instance attribute.
func (m *Manager) AddInstanced(d Descriptor) error {
	d.Instanced = true
	return m.add(d)
}

func (m *Manager) add(d Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}
	if _, ok := m.attrs[d.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAttribute, d.Name)
	}

	values := valuePool.Get(0)
	values.Grow(m.cfg.InitialCapacity * d.Size)

	a := &Attribute{desc: d, values: values}
	m.attrs[d.Name] = a
	m.order = append(m.order, a)
	m.enqueue(a)

	m.log.Debug("attribute added",
		zap.String("attribute", d.Name),
		zap.Int("size", d.Size),
		zap.Bool("instanced", d.Instanced),
		zap.Bool("constant", d.Constant != nil))
	return nil
}

// Attribute returns the named attribute.
func (m *Manager) Attribute(name string) (*Attribute, bool) {
	a, ok := m.attrs[name]
	return a, ok
}

// Attributes returns all attributes in registration order.
func (m *Manager) Attributes() []*Attribute {
	out := make([]*Attribute, len(m.order))
	copy(out, m.order)
	return out
}

// SetConstant replaces the constant value of an attribute and invalidates it.
// An attribute driven by an accessor becomes constant.
func (m *Manager) SetConstant(name string, value flatten.Node[float64]) error {
	a, ok := m.attrs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	a.desc.Constant = &value
	a.pattern = nil
	m.enqueue(a)
	return nil
}

// Invalidate marks the named attribute for recomputation on the next Update.
func (m *Manager) Invalidate(name string) error {
	a, ok := m.attrs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	m.enqueue(a)
	return nil
}

// InvalidateAll marks every attribute for recomputation in registration order.
func (m *Manager) InvalidateAll() {
	m.log.Debug("invalidating all attributes", zap.Int("attributes", len(m.order)))
	for _, a := range m.order {
		m.enqueue(a)
	}
}

func (m *Manager) enqueue(a *Attribute) {
	if a.needsUpdate {
		return
	}
	a.needsUpdate = true
	m.pending.Add(a)
}

// Pending returns the number of attributes waiting for Update.
func (m *Manager) Pending() int {
	return m.pending.Length()
}

// Update recomputes invalidated attributes for numInstances objects. A change
// in the object count invalidates every attribute. An attribute that fails
// keeps its previous values, stays pending and the error names it.
// Attributes updated before the failure still raise the redraw flag.
func (m *Manager) Update(numInstances int) error {
	if numInstances < 0 {
		return fmt.Errorf("%w: %d", ErrInstanceCount, numInstances)
	}
	if numInstances != m.numInstances {
		m.log.Debug("instance count changed",
			zap.Int("from", m.numInstances),
			zap.Int("to", numInstances))
		m.numInstances = numInstances
		m.InvalidateAll()
	}

	updated := 0
	for m.pending.Length() > 0 {
		a := m.pending.Remove().(*Attribute)
		if err := m.updateAttribute(a); err != nil {
			m.pending.Add(a)
			if updated > 0 {
				m.needsRedraw = true
			}
			m.log.Warn("attribute update failed",
				zap.String("attribute", a.desc.Name),
				zap.Error(err))
			return fmt.Errorf("update %s: %w", a.desc.Name, err)
		}
		a.needsUpdate = false
		updated++
	}

	if updated > 0 {
		m.needsRedraw = true
		m.log.Debug("attributes updated",
			zap.Int("attributes", updated),
			zap.Int("instances", numInstances))
	}
	return nil
}

func (m *Manager) updateAttribute(a *Attribute) error {
	n := m.numInstances
	size := a.desc.Size

	total, ok := core.CheckedMul(n, size)
	if !ok {
		return fmt.Errorf("%w: %d objects of %d components overflow int", ErrInstanceCount, n, size)
	}

	if a.desc.Constant != nil && a.pattern == nil {
		pattern, err := m.gather(nil, *a.desc.Constant, a.desc)
		if err != nil {
			return err
		}
		a.pattern = pattern
	}

	// Stage the whole column so a failing object leaves the attribute as it was.
	m.staging = core.EnsureLen(m.staging, total)

	if a.pattern != nil {
		if n > 0 {
			if _, err := buffer.Replicate(m.staging, a.pattern, 0, n); err != nil {
				return err
			}
		}
	} else {
		for i := 0; i < n; i++ {
			var err error
			m.scratch, err = m.gather(m.scratch[:0], a.desc.Accessor(i), a.desc)
			if err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
			core.CopyInto(m.staging[i*size:(i+1)*size], m.scratch)
		}
	}

	if len(a.desc.Scale) > 0 && n > 0 {
		m.scale = core.EnsureLen(m.scale, total)
		if _, err := buffer.Replicate(m.scale, a.desc.Scale, 0, n); err != nil {
			return err
		}
		vecmath.MulBlockInPlace(m.staging, m.scale)
	}

	a.values.Resize(total)
	core.CopyInto(a.values.Elements(), m.staging)
	a.numInstances = n
	return nil
}

// gather flattens one object's value into dst and pads it to the attribute size.
func (m *Manager) gather(dst []float64, value flatten.Node[float64], d Descriptor) ([]float64, error) {
	dst, err := m.flattener.Append(dst, value)
	if err != nil {
		return dst, err
	}
	if len(dst) > d.Size {
		return dst, fmt.Errorf("%w: got %d components, want %d", ErrSizeMismatch, len(dst), d.Size)
	}
	return core.PadTo(dst, d.Size, d.Default), nil
}

// NeedsRedraw reports whether any attribute changed since the flag was last
// cleared. If clearFlag is true the flag is reset after reading.
func (m *Manager) NeedsRedraw(clearFlag bool) bool {
	redraw := m.needsRedraw
	m.needsRedraw = m.needsRedraw && !clearFlag
	return redraw
}

// SetNeedsRedraw forces the next NeedsRedraw call to report true.
func (m *Manager) SetNeedsRedraw() {
	m.needsRedraw = true
}

// Finalize returns attribute storage to the shared pool. The Manager and its
// attributes must not be used afterwards.
func (m *Manager) Finalize() {
	for _, a := range m.order {
		valuePool.Put(a.values)
		a.values = nil
	}
	m.attrs = nil
	m.order = nil
	m.log.Debug("finalized")
}
