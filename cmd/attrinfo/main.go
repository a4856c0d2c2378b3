// Command attrinfo prepares the attribute buffers of a layer description and
// prints a summary of the result.
//
// Usage:
//
//	attrinfo build [flags] <layer.yaml|layer.json>
//	attrinfo features
//
// Examples:
//
//	attrinfo build testdata/airports.yaml
//	attrinfo build -n 100000 -v testdata/airports.yaml
//	attrinfo features
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-attrib/attr/core"
	"github.com/cwbudde/algo-attrib/attr/manager"
	"github.com/cwbudde/algo-attrib/internal/layerfile"
)

const previewValues = 8

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "attrinfo",
		Short:        "Prepare and inspect layer attribute buffers",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			manager.SetLogger(l)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log attribute updates")

	root.AddCommand(newBuildCmd(), newFeaturesCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var (
		instances int
		maxDepth  int
	)

	cmd := &cobra.Command{
		Use:   "build <layer-file>",
		Short: "Build attribute buffers for a layer file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layer, err := layerfile.Load(args[0])
			if err != nil {
				return err
			}

			m, err := layer.Build(manager.WithPrepareOptions(
				core.WithMaxDepth(maxDepth),
				core.WithInitialCapacity(instances),
			))
			if err != nil {
				return err
			}
			defer m.Finalize()

			n := layer.NumInstances()
			if instances > 0 {
				n = instances
			}
			if err := m.Update(n); err != nil {
				return err
			}

			printAttributes(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().IntVarP(&instances, "instances", "n", 0, "override the instance count of the layer")
	cmd.Flags().IntVar(&maxDepth, "max-depth", core.DefaultPrepareConfig().MaxDepth, "maximum nesting depth of attribute values (0 = unlimited)")
	return cmd
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print the CPU features used for vector kernels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			f := cpu.DetectFeatures()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Feature", "Value"})
			table.Append([]string{"architecture", f.Architecture})
			table.Append([]string{"sse2", strconv.FormatBool(f.HasSSE2)})
			table.Append([]string{"avx2", strconv.FormatBool(f.HasAVX2)})
			table.Append([]string{"force-generic", strconv.FormatBool(f.ForceGeneric)})
			table.Render()
		},
	}
}

func printAttributes(w io.Writer, m *manager.Manager) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Size", "Step", "Source", "Format", "Instances", "Bytes", "Values"})
	table.SetAutoWrapText(false)

	for _, a := range m.Attributes() {
		step := "vertex"
		if a.Instanced() {
			step = "instance"
		}
		source := "accessor"
		if a.IsConstant() {
			source = "constant"
		}
		table.Append([]string{
			a.Name(),
			strconv.Itoa(a.Size()),
			step,
			source,
			a.Format().String(),
			strconv.Itoa(a.NumInstances()),
			strconv.Itoa(a.ByteLength()),
			preview(a.Values()),
		})
	}
	table.Render()
}

func preview(values []float64) string {
	n := min(len(values), previewValues)
	parts := make([]string, n, n+1)
	for i := range n {
		parts[i] = strconv.FormatFloat(values[i], 'g', 6, 64)
	}
	if len(values) > n {
		parts = append(parts, fmt.Sprintf("… (%d more)", len(values)-n))
	}
	return strings.Join(parts, " ")
}
