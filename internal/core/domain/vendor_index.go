package domain

import (
	"iter"
	"maps"
	"slices"
)

// VendorIndex maps formula names to their absolute root directories.
// An index is immutable once built; rebuilding produces a new value.
type VendorIndex struct {
	project  ProjectConfig
	formulas map[string]string
	names    []string
}

// NewVendorIndex builds an index for project from a name -> root mapping.
// The mapping is copied.
func NewVendorIndex(project ProjectConfig, formulas map[string]string) *VendorIndex {
	owned := maps.Clone(formulas)
	if owned == nil {
		owned = make(map[string]string)
	}
	return &VendorIndex{
		project:  project,
		formulas: owned,
		names:    slices.Sorted(maps.Keys(owned)),
	}
}

// Project returns the configuration the index was built from.
func (v *VendorIndex) Project() ProjectConfig {
	return v.project
}

// Root returns the root directory of the named formula.
func (v *VendorIndex) Root(name string) (string, bool) {
	if v == nil {
		return "", false
	}
	root, ok := v.formulas[name]
	return root, ok
}

// Len returns the number of formulas.
func (v *VendorIndex) Len() int {
	if v == nil {
		return 0
	}
	return len(v.formulas)
}

// Names returns the formula names in lexical order.
func (v *VendorIndex) Names() []string {
	if v == nil {
		return []string{}
	}
	return slices.Clone(v.names)
}

// Roots returns the formula roots ordered by formula name.
func (v *VendorIndex) Roots() []string {
	roots := make([]string, 0, v.Len())
	for _, root := range v.All() {
		roots = append(roots, root)
	}
	return roots
}

// All yields (name, root) pairs in lexical name order.
func (v *VendorIndex) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if v == nil {
			return
		}
		for _, name := range v.names {
			if !yield(name, v.formulas[name]) {
				return
			}
		}
	}
}
