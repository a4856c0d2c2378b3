// Package layerfile loads layer descriptions used by the attrinfo command.
package layerfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-attrib/attr/flatten"
	"github.com/cwbudde/algo-attrib/attr/literal"
	"github.com/cwbudde/algo-attrib/attr/manager"
	"github.com/cwbudde/algo-attrib/attr/pack"
)

var errNoValues = errors.New("layerfile: attribute needs constant or values")

// Layer is the on-disk description of one layer.
type Layer struct {
	ID         string      `json:"id" yaml:"id"`
	Instances  int         `json:"instances" yaml:"instances"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// Attribute is the on-disk description of one attribute column.
type Attribute struct {
	Name      string    `json:"name" yaml:"name"`
	Size      int       `json:"size" yaml:"size"`
	Instanced *bool     `json:"instanced" yaml:"instanced"`
	Format    string    `json:"format" yaml:"format"`
	Default   []float64 `json:"default" yaml:"default"`
	Scale     []float64 `json:"scale" yaml:"scale"`
	// Constant is a nested literal shared by every object.
	Constant any `json:"constant" yaml:"constant"`
	// Values holds one nested literal per object.
	Values []any `json:"values" yaml:"values"`
}

// Load reads a layer description, choosing the decoder by file extension.
// ".json" files are decoded as JSON; everything else as YAML.
func Load(path string) (*Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseJSON decodes a JSON layer description.
func ParseJSON(data []byte) (*Layer, error) {
	var l Layer
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layerfile: decode json: %w", err)
	}
	return &l, nil
}

// ParseYAML decodes a YAML layer description.
func ParseYAML(data []byte) (*Layer, error) {
	var l Layer
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layerfile: decode yaml: %w", err)
	}
	return &l, nil
}

// NumInstances returns the declared instance count, or the longest values
// list when none is declared.
func (l *Layer) NumInstances() int {
	if l.Instances > 0 {
		return l.Instances
	}
	n := 0
	for _, a := range l.Attributes {
		n = max(n, len(a.Values))
	}
	return n
}

// Build registers every attribute of the layer with a new Manager.
func (l *Layer) Build(opts ...manager.Option) (*manager.Manager, error) {
	m := manager.New(l.ID, opts...)
	for _, a := range l.Attributes {
		d, err := a.descriptor()
		if err != nil {
			return nil, err
		}
		if a.Instanced == nil || *a.Instanced {
			err = m.AddInstanced(d)
		} else {
			err = m.Add(d)
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (a Attribute) descriptor() (manager.Descriptor, error) {
	format, err := pack.ParseFormat(a.Format)
	if err != nil {
		return manager.Descriptor{}, fmt.Errorf("attribute %s: %w", a.Name, err)
	}

	d := manager.Descriptor{
		Name:    a.Name,
		Size:    a.Size,
		Default: a.Default,
		Scale:   a.Scale,
		Format:  format,
	}

	switch {
	case a.Constant != nil:
		n, err := literal.FromValue(a.Constant)
		if err != nil {
			return manager.Descriptor{}, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		d.Constant = &n
	case len(a.Values) > 0:
		values := make([]flatten.Node[float64], len(a.Values))
		for i, v := range a.Values {
			n, err := literal.FromValue(v)
			if err != nil {
				return manager.Descriptor{}, fmt.Errorf("attribute %s: object %d: %w", a.Name, i, err)
			}
			values[i] = n
		}
		// Objects past the end of the list get an empty value and are
		// filled from the default.
		d.Accessor = func(i int) flatten.Node[float64] {
			if i < len(values) {
				return values[i]
			}
			return flatten.Seq[float64]()
		}
	default:
		return manager.Descriptor{}, fmt.Errorf("%w: %s", errNoValues, a.Name)
	}
	return d, nil
}
