// Package mathutil provides small scalar arithmetic helpers. It is
// stateless and shares no types with the tensor packages; it exists as
// an independent utility API for demonstration programs.
package mathutil

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return a * b
}

// CircleArea returns the area of a circle with the given radius.
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// FprintResult writes a formatted result line to w.
func FprintResult(w io.Writer, result int) {
	fmt.Fprintf(w, "Result: %d\n", result)
}

// PrintResult writes the formatted result to standard output.
func PrintResult(result int) {
	FprintResult(os.Stdout, result)
}
