// Command minitensor demonstrates the tensor construction and accessor
// API: explicit-shape allocation, nested-literal inference, the
// zeros/ones factories, and the unrelated scalar helpers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/minitensor/mathutil"
	"github.com/born-ml/minitensor/tensor"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	klog.InitFlags(nil)
	flag.Parse()

	log := klog.FromContext(ctx)

	t, err := tensor.New(tensor.Shape{2, 3, 4}, tensor.Float32, tensor.DefaultDevice())
	if err != nil {
		return fmt.Errorf("allocating tensor: %w", err)
	}
	log.Info("allocated tensor", "shape", t.Shape(), "strides", t.Strides(), "dtype", t.Dtype().String())

	fmt.Printf("Num elements: %d\n", t.NumElements())
	fmt.Printf("Total bytes: %d\n", t.Nbytes())
	for i, dim := range t.Shape() {
		fmt.Printf("Dim %d: %d\n", i, dim)
	}

	// Decompose each flat offset into its N-dimensional index using the
	// shape and strides.
	for i := 0; i < t.NumElements(); i++ {
		fmt.Printf("Element %d:", i)
		for j := range t.Shape() {
			fmt.Printf(" %d", (i/t.Strides()[j])%t.Shape()[j])
		}
		fmt.Println()
	}

	data, err := tensor.Data[float32](t)
	if err != nil {
		return fmt.Errorf("accessing tensor data: %w", err)
	}
	data[0] = 3.14
	fmt.Printf("First element = %v\n", data[0])

	nested, err := tensor.FromNested(
		tensor.Nest2D([][]float32{{0, -1, 3}, {1, 2, 3}, {4, 5, 6}}),
		tensor.DefaultDevice(),
	)
	if err != nil {
		return fmt.Errorf("building nested tensor: %w", err)
	}
	fmt.Printf("Nested tensor: %s\n", nested)
	fmt.Printf("Rows: %d\n", nested.Shape()[0])
	fmt.Printf("Cols: %d\n", nested.Shape()[1])
	v, err := tensor.At[float32](nested, 1, 2)
	if err != nil {
		return fmt.Errorf("reading nested tensor: %w", err)
	}
	fmt.Printf("Element at (1,2): %v\n", v)

	zeros, err := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, tensor.DefaultDevice())
	if err != nil {
		return fmt.Errorf("building zeros tensor: %w", err)
	}
	ones, err := tensor.Ones(tensor.Shape{2, 3}, tensor.Float32, tensor.DefaultDevice())
	if err != nil {
		return fmt.Errorf("building ones tensor: %w", err)
	}
	fmt.Printf("Zeros: %s\n", zeros)
	fmt.Printf("Ones: %s\n", ones)

	mathutil.PrintResult(mathutil.Add(2, 3))
	mathutil.PrintResult(mathutil.Multiply(4, 5))
	fmt.Printf("Circle area (r=2): %.4f\n", mathutil.CircleArea(2))

	return nil
}
