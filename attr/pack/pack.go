// Package pack encodes prepared attribute values into the little-endian byte
// layouts uploaded to vertex buffers.
package pack

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/x448/float16"

	"github.com/cwbudde/algo-attrib/attr/core"
)

// Format identifies the component encoding of an attribute buffer.
type Format int

const (
	FormatFloat32 Format = iota
	FormatFloat16
	FormatUnorm8
)

// String returns the vertex format name.
func (f Format) String() string {
	switch f {
	case FormatFloat32:
		return "float32"
	case FormatFloat16:
		return "float16"
	case FormatUnorm8:
		return "unorm8"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// BytesPerComponent returns the encoded size of one component, or 0 for
// unknown formats.
func (f Format) BytesPerComponent() int {
	switch f {
	case FormatFloat32:
		return 4
	case FormatFloat16:
		return 2
	case FormatUnorm8:
		return 1
	default:
		return 0
	}
}

// ParseFormat returns the Format for a name produced by Format.String.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "float32":
		return FormatFloat32, nil
	case "float16":
		return FormatFloat16, nil
	case "unorm8":
		return FormatUnorm8, nil
	}
	return 0, fmt.Errorf("pack: unknown format %q", name)
}

// Encode appends values to dst in the given format and returns the extended slice.
func Encode(format Format, dst []byte, values []float64) ([]byte, error) {
	switch format {
	case FormatFloat32:
		return Float32LE(dst, values), nil
	case FormatFloat16:
		return Float16LE(dst, values), nil
	case FormatUnorm8:
		return Unorm8(dst, values), nil
	}
	return dst, fmt.Errorf("pack: unknown format %v", format)
}

// Float32LE appends values as little-endian IEEE 754 single precision floats.
func Float32LE(dst []byte, values []float64) []byte {
	dst = grow(dst, 4*len(values))
	for _, v := range values {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
	}
	return dst
}

// Float16LE appends values as little-endian IEEE 754 half precision floats.
// Values outside the half range become infinities.
func Float16LE(dst []byte, values []float64) []byte {
	dst = grow(dst, 2*len(values))
	for _, v := range values {
		dst = binary.LittleEndian.AppendUint16(dst, float16.Fromfloat32(float32(v)).Bits())
	}
	return dst
}

// Unorm8 appends values in [0, 1] as normalized unsigned bytes, rounding to
// nearest and clamping out-of-range input.
func Unorm8(dst []byte, values []float64) []byte {
	if len(values) == 0 {
		return dst
	}

	scaled := make([]float64, len(values))
	vecmath.ScaleBlock(scaled, values, 255)

	dst = grow(dst, len(values))
	for _, v := range scaled {
		if math.IsNaN(v) {
			dst = append(dst, 0)
			continue
		}
		dst = append(dst, uint8(math.Round(core.Clamp(v, 0, 255))))
	}
	return dst
}

func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}
	out := make([]byte, len(dst), len(dst)+n)
	copy(out, dst)
	return out
}
