// Package literal converts decoded property literals, such as the nested
// number arrays found in JSON or YAML layer descriptions, into flatten nodes.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-attrib/attr/flatten"
)

// MaxDepth bounds the nesting accepted by FromValue.
const MaxDepth = 1000

var (
	// ErrUnsupportedValue is returned for leaves that are not numbers or booleans.
	ErrUnsupportedValue = errors.New("literal: unsupported value")
	// ErrTooDeep is returned when a literal nests deeper than MaxDepth.
	ErrTooDeep = errors.New("literal: nesting too deep")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeJSON parses a JSON literal such as `[[0, 0], [1, 2.5]]`.
func DecodeJSON(data []byte) (flatten.Node[float64], error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return flatten.Node[float64]{}, fmt.Errorf("literal: decode json: %w", err)
	}
	return FromValue(v)
}

// DecodeYAML parses a YAML literal such as `[[0, 0], [1, 2.5]]` or a block sequence.
func DecodeYAML(data []byte) (flatten.Node[float64], error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return flatten.Node[float64]{}, fmt.Errorf("literal: decode yaml: %w", err)
	}
	return FromValue(v)
}

// FromValue converts a decoded value into a node. Slices become sequences;
// numbers become leaves; booleans become 0 or 1.
func FromValue(v any) (flatten.Node[float64], error) {
	return fromValue(v, nil)
}

func fromValue(v any, path []int) (flatten.Node[float64], error) {
	if len(path) > MaxDepth {
		return flatten.Node[float64]{}, fmt.Errorf("%w at %s", ErrTooDeep, formatPath(path))
	}

	switch x := v.(type) {
	case []any:
		items := make([]flatten.Node[float64], len(x))
		for i, item := range x {
			n, err := fromValue(item, append(path, i))
			if err != nil {
				return flatten.Node[float64]{}, err
			}
			items[i] = n
		}
		return flatten.Seq(items...), nil
	case []float64:
		return flatten.FromSlice(x), nil
	case []float32:
		return numbers(x), nil
	case []int:
		return numbers(x), nil
	case [][]float64:
		return flatten.FromMatrix(x), nil
	}

	f, ok := scalar(v)
	if !ok {
		return flatten.Node[float64]{}, fmt.Errorf("%w %T at %s", ErrUnsupportedValue, v, formatPath(path))
	}
	return flatten.Leaf(f), nil
}

func numbers[T float32 | int](values []T) flatten.Node[float64] {
	items := make([]flatten.Node[float64], len(values))
	for i, v := range values {
		items[i] = flatten.Leaf(float64(v))
	}
	return flatten.Seq(items...)
}

func scalar(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case jsoniter.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}

func formatPath(path []int) string {
	if len(path) == 0 {
		return "root"
	}
	var sb strings.Builder
	for _, i := range path {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
	return sb.String()
}
