// Package convert drives the STL to OpenSCAD pipeline: load, build the
// point and face tables, optionally check and split, then write module
// files.
package convert

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/mMerlin/stl2scad/internal/config"
	"github.com/mMerlin/stl2scad/internal/logger"
	"github.com/mMerlin/stl2scad/pkg/scad"
	"github.com/mMerlin/stl2scad/pkg/stl"
	"github.com/mMerlin/stl2scad/pkg/topology"
)

// Result describes one converted input file.
type Result struct {
	Input   string
	Outputs []string
	Report  *topology.Report // nil unless analysis ran
}

// File converts a single STL file according to the options and returns
// the paths of the files written.
func File(ctx context.Context, path string, opts *config.Options) (*Result, error) {
	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	base := scad.ModuleName(model.Name, filepath.Base(path))

	start := time.Now()
	var poly *topology.Polyhedron
	if opts.Mode == config.ModeRaw {
		poly = topology.Raw(base, model.Triangles)
	} else {
		poly = topology.Dedup(base, model.Triangles, opts.Precision)
	}
	logger.Debug("point table built",
		zap.String("model", base),
		zap.Int("faces", poly.FaceCount()),
		zap.Int("points", poly.PointCount()),
		zap.Duration("elapsed", time.Since(start)))

	res := &Result{Input: path}
	if opts.Analyze {
		start = time.Now()
		report := topology.Validate(poly)
		res.Report = &report
		logReport(base, report, time.Since(start))
	}

	objects := []*topology.Polyhedron{poly}
	if opts.Mode == config.ModeSplit {
		start = time.Now()
		surfaces, err := topology.Split(ctx, poly)
		if err != nil {
			return nil, fmt.Errorf("splitting %s: %w", path, err)
		}
		logger.Debug("surfaces extracted",
			zap.String("model", base),
			zap.Int("surfaces", len(surfaces)),
			zap.Duration("elapsed", time.Since(start)))

		if len(surfaces) > 1 {
			objects = objects[:0]
			for i, s := range surfaces {
				name := scad.SequencedModuleName(base, i+1)
				objects = append(objects, topology.Reassemble(poly, s, name))
			}
		}
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	scadOpts := scad.Options{
		Indent:    opts.Indent,
		Precision: opts.Precision,
		Compat:    opts.ScadVersion,
	}

	if len(objects) == 1 {
		out := filepath.Join(outDir, scad.ModuleFileName(base, 0))
		if err := writeModuleFile(out, base, objects[0], scadOpts, opts.Force); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, out)
		logger.Info("module written", zap.String("input", path), zap.String("output", out))
		return res, nil
	}

	files := make([]string, len(objects))
	names := make([]string, len(objects))
	for i, obj := range objects {
		files[i] = scad.ModuleFileName(base, i+1)
		names[i] = obj.Name
		out := filepath.Join(outDir, files[i])
		if err := writeModuleFile(out, obj.Name, obj, scadOpts, opts.Force); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, out)
		logger.Info("module written", zap.String("input", path), zap.String("output", out))
	}

	wrapper := filepath.Join(outDir, scad.ModuleFileName(base, 0))
	if err := writeWrapperFile(wrapper, files, names, opts.Force); err != nil {
		return nil, err
	}
	res.Outputs = append(res.Outputs, wrapper)
	logger.Info("object load wrapper written", zap.String("output", wrapper))

	return res, nil
}

func logReport(name string, r topology.Report, elapsed time.Duration) {
	logger.Debug("integrity checks complete",
		zap.String("model", name),
		zap.Int("min_vertex_refs", r.MinVertexRefs),
		zap.Int("max_vertex_refs", r.MaxVertexRefs),
		zap.Duration("elapsed", elapsed))

	if !r.VertexRefsOK() {
		logger.Warn("not enough face vertex references to close the surface",
			zap.String("model", name),
			zap.Int("min_refs", r.MinVertexRefs),
			zap.Int("under_referenced", r.UnderReferenced))
	}
	if r.OrphanVertices > 0 {
		logger.Warn("some vertexes are not used by any face",
			zap.String("model", name),
			zap.Int("orphans", r.OrphanVertices))
	}
	if r.DuplicateEdges > 0 {
		logger.Warn("duplicate edges encountered",
			zap.String("model", name),
			zap.Int("extra_edges", r.DuplicateEdges))
	}
	if r.MissingReverse > 0 {
		logger.Warn("missing reverse direction edges",
			zap.String("model", name),
			zap.Int("count", r.MissingReverse))
	}
	if r.DegenerateFaces > 0 {
		logger.Warn("degenerate faces present",
			zap.String("model", name),
			zap.Int("count", r.DegenerateFaces))
	}
	if r.Manifold() {
		logger.Info("surface integrity checks passed", zap.String("model", name))
	}
}

func writeModuleFile(path, name string, p *topology.Polyhedron, opts scad.Options, force bool) error {
	f, err := createFile(path, force)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := scad.WriteModule(w, name, p, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeWrapperFile(path string, files, names []string, force bool) error {
	f, err := createFile(path, force)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := scad.WriteWrapper(w, files, names); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// createFile refuses to overwrite existing output unless forced.
func createFile(path string, force bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0o644)
}
