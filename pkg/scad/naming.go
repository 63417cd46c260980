package scad

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fallbackName is used when neither the solid name nor the file name
// yields a usable module name.
const fallbackName = "stlmodule"

// ModuleName picks the base name for generated modules: the STL solid
// name when it carries more than one rune, else the input file stem,
// else a generic fallback.
func ModuleName(solidName, fileName string) string {
	name := strings.TrimSpace(solidName)
	if len(name) > 1 {
		return name
	}

	ext := filepath.Ext(fileName)
	stem := strings.TrimSuffix(fileName, ext)
	if len(stem) > 1 && len(ext) < 5 {
		name = stem
	} else {
		name = fileName
	}
	if len(name) < 2 {
		return fallbackName
	}
	return name
}

// SequencedModuleName numbers a module within a multi-object model,
// e.g. "gear" 2 -> "gear002". A sequence below 1 means the model has a
// single object and the base name is used as is.
func SequencedModuleName(base string, seq int) string {
	if seq < 1 {
		return base
	}
	return fmt.Sprintf("%s%03d", base, seq)
}

// ModuleFileName builds the output file name for a module. Sequenced
// files get a "_NNN" suffix ahead of the extension.
func ModuleFileName(base string, seq int) string {
	if seq < 1 {
		return base + ".scad"
	}
	return fmt.Sprintf("%s_%03d.scad", base, seq)
}
