// Package scad renders polyhedron tables as OpenSCAD modules.
package scad

import (
	"fmt"
	"io"
	"strings"

	"github.com/mMerlin/stl2scad/pkg/topology"
)

// CompatLegacy selects output compatible with OpenSCAD 2014.03, which
// spelled the polyhedron face list "triangles" instead of "faces".
const CompatLegacy = "2014.03"

// Options control the generated OpenSCAD syntax
type Options struct {
	Indent    string // prefix repeated per nesting level
	Precision int    // significant digits for point coordinates
	Compat    string // target OpenSCAD version: "current" or CompatLegacy
}

// DefaultOptions returns the conventional output settings
func DefaultOptions() Options {
	return Options{
		Indent:    "\t",
		Precision: topology.DefaultPrecision,
		Compat:    "current",
	}
}

func (o Options) facesKeyword() string {
	if o.Compat == CompatLegacy {
		return "triangles"
	}
	return "faces"
}

// WriteModule renders one polyhedron as a named OpenSCAD module
// followed by an instantiation of it.
func WriteModule(w io.Writer, name string, p *topology.Polyhedron, opts Options) error {
	if opts.Indent == "" {
		opts.Indent = "\t"
	}
	indent1 := opts.Indent
	indent2 := strings.Repeat(opts.Indent, 2)
	indent3 := strings.Repeat(opts.Indent, 3)
	join := ",\n" + indent3

	points := make([]string, len(p.Points))
	for i, pt := range p.Points {
		points[i] = topology.EncodePoint(pt, opts.Precision)
	}
	faces := make([]string, len(p.Faces))
	for i, f := range p.Faces {
		faces[i] = fmt.Sprintf("[%d, %d, %d]", f[0], f[1], f[2])
	}

	_, err := fmt.Fprintf(w,
		"module %[1]s() {\n"+
			"%[2]spolyhedron(\n"+
			"%[3]spoints=[\n%[4]s%[5]s\n%[3]s],\n"+
			"%[3]s%[6]s=[\n%[4]s%[7]s\n%[3]s]\n"+
			"%[2]s);\n"+
			"}\n\n"+
			"%[1]s();\n",
		name, indent1, indent2, indent3,
		strings.Join(points, join),
		opts.facesKeyword(),
		strings.Join(faces, join))
	return err
}

// WriteWrapper renders a loader script that uses and instantiates each
// per-surface module file, so the split model can be opened as one.
func WriteWrapper(w io.Writer, files, names []string) error {
	for i, file := range files {
		if _, err := fmt.Fprintf(w, "use <%s>\n%s();\n", file, names[i]); err != nil {
			return err
		}
	}
	return nil
}
