package manager

import (
	"github.com/cwbudde/algo-attrib/attr/buffer"
	"github.com/cwbudde/algo-attrib/attr/pack"
)

// Attribute holds the prepared values of one attribute column.
type Attribute struct {
	desc         Descriptor
	values       *buffer.Buffer[float64]
	pattern      []float64
	numInstances int
	needsUpdate  bool
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.desc.Name }

// Size returns the number of components per object.
func (a *Attribute) Size() int { return a.desc.Size }

// Instanced reports whether the attribute advances per instance.
func (a *Attribute) Instanced() bool { return a.desc.Instanced }

// Format returns the upload encoding.
func (a *Attribute) Format() pack.Format { return a.desc.Format }

// IsConstant reports whether every object shares one replicated value.
func (a *Attribute) IsConstant() bool { return a.desc.Constant != nil }

// NumInstances returns the object count of the last successful update.
func (a *Attribute) NumInstances() int { return a.numInstances }

// NeedsUpdate reports whether the attribute is waiting to be recomputed.
func (a *Attribute) NeedsUpdate() bool { return a.needsUpdate }

// Values returns the prepared components, Size per object.
// The slice is owned by the attribute and is overwritten by the next update.
func (a *Attribute) Values() []float64 {
	if a.values == nil {
		return nil
	}
	return a.values.Elements()
}

// Bytes appends the values encoded in the attribute's format to dst.
func (a *Attribute) Bytes(dst []byte) ([]byte, error) {
	return pack.Encode(a.desc.Format, dst, a.Values())
}

// ByteLength returns the encoded size of the prepared values.
func (a *Attribute) ByteLength() int {
	return len(a.Values()) * a.desc.Format.BytesPerComponent()
}
