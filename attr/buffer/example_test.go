package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-attrib/attr/buffer"
)

func ExampleBuffer() {
	b := buffer.New[float64](4)
	copy(b.Elements(), []float64{1, 2, 3, 4})

	b.Resize(6)
	b.ZeroRange(1, 5)

	fmt.Println(b.Elements())
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// [1 0 0 0 0 0]
	// 6 6
}

func ExampleReplicate() {
	colors := make([]uint8, 12)

	// One RGBA color repeated for three instances.
	out, err := buffer.Replicate(colors, []uint8{255, 128, 0, 255}, 0, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	fmt.Println(buffer.CopyOps(4, 3))

	// Output:
	// [255 128 0 255 255 128 0 255 255 128 0 255]
	// 3
}
