package hob

import "github.com/maseology/hob/grid"

// Check screens package data for input compliance ahead of a model run: name
// width and uniqueness, cell indices within the grid, fractional offsets
// within half a cell, and non-negative multilayer layer indices. gd may be
// nil to skip the spatial checks.
func (h *HOB) Check(gd *grid.Definition) error {
	seen := make(map[string]bool, len(h.Obs))
	for i, o := range h.Obs {
		if o == nil {
			return validationf("observation %d is not a head observation", i+1)
		}
		if len(o.Obsname) > nameWidth {
			return validationf("observation %d: name %q exceeds %d characters", i+1, o.Obsname, nameWidth)
		}
		if seen[o.Obsname] {
			return validationf("observation %d: duplicate name %q", i+1, o.Obsname)
		}
		seen[o.Obsname] = true
		if o.Roff < -.5 || o.Roff > .5 || o.Coff < -.5 || o.Coff > .5 {
			return validationf("observation %d (%s): cell offsets (%g, %g) outside [-0.5, 0.5]", i+1, o.Obsname, o.Roff, o.Coff)
		}
		for _, lf := range o.Mlay {
			if lf.Layer < 0 {
				return validationf("observation %d (%s): negative layer %d in multilayer proportions", i+1, o.Obsname, lf.Layer)
			}
		}
		if gd == nil {
			continue
		}
		if o.Row < 0 || o.Row >= gd.Nr || o.Column < 0 || o.Column >= gd.Nc {
			return validationf("observation %d (%s): cell (%d, %d) outside %d x %d grid", i+1, o.Obsname, o.Row, o.Column, gd.Nr, gd.Nc)
		}
		if !gd.IsActive(gd.CellID(o.Row, o.Column)) {
			return validationf("observation %d (%s): cell (%d, %d) is inactive", i+1, o.Obsname, o.Row, o.Column)
		}
	}
	return nil
}
