// Command gendims writes the per-length declarations of package nvec:
// the Array constraint, the VecN aliases and the NewN constructors.
//
// Usage (from package nvec):
//
//	//go:generate go run ../internal/gendims -max 16 -out dims_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

const source = `// Code generated by gendims; DO NOT EDIT.

package nvec

import "github.com/cwbudde/algo-nvec/numeric"

// MaxDim is the largest supported vector length.
const MaxDim = {{.Max}}

// Array is the set of backing arrays a Vector can have. The length of the
// array is the length of the vector, so vectors of different lengths are
// different types.
type Array interface {
	{{range $i, $n := .Dims}}{{if $i}} | {{end}}[{{$n}}]numeric.Bits{{end}}
}
{{range .Dims}}
// Vec{{.}} is a vector with {{.}} component{{if ne . 1}}s{{end}}.
type Vec{{.}} = Vector[[{{.}}]numeric.Bits]

// New{{.}} builds a Vec{{.}} from {{.}} value{{if ne . 1}}s{{end}} of one kind.
func New{{.}}[T numeric.Element](c [{{.}}]T) Vec{{.}} {
	return build[[{{.}}]numeric.Bits](c[:])
}
{{end}}`

func main() {
	maxDim := flag.Int("max", 16, "largest vector length to generate")
	out := flag.String("out", "dims_gen.go", "output file")
	flag.Parse()

	if *maxDim < 3 {
		fmt.Fprintln(os.Stderr, "gendims: -max must be at least 3 (cross product needs Vec3)")
		os.Exit(2)
	}

	dims := make([]int, *maxDim)
	for i := range dims {
		dims[i] = i + 1
	}

	tmpl := template.Must(template.New("dims").Parse(source))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Max  int
		Dims []int
	}{Max: *maxDim, Dims: dims})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gendims: %v\n", err)
		os.Exit(1)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gendims: format: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gendims: %v\n", err)
		os.Exit(1)
	}
}
