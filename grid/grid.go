// Package grid reads uniform grid definition (GDEF) files.
package grid

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// Definition holds a uniform grid definition. act, when present, is the
// packed active-cell bitmap carried on the trailing GDEF line.
type Definition struct {
	Eorig, Norig, Rot, Cs float64
	Nr, Nc                int
	act                   []byte
}

// ReadGDEF imports a grid definition file
func ReadGDEF(fp string) (*Definition, error) {
	a, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadGDEF failed: %v", err)
	}
	if len(a) < 6 {
		return nil, fmt.Errorf("ReadGDEF: %s: incomplete header", fp)
	}

	parse := func(i int, name string) (float64, error) {
		v, err := strconv.ParseFloat(a[i], 64)
		if err != nil {
			return 0., fmt.Errorf("ReadGDEF: failed to read '%s': %v", name, err)
		}
		return v, nil
	}
	oe, err := parse(0, "OE")
	if err != nil {
		return nil, err
	}
	on, err := parse(1, "ON")
	if err != nil {
		return nil, err
	}
	rot, err := parse(2, "ROT")
	if err != nil {
		return nil, err
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("ReadGDEF: failed to read 'NR': %v", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("ReadGDEF: failed to read 'NC': %v", err)
	}

	uni := false
	cs, err := strconv.ParseFloat(a[5], 64)
	if err != nil {
		if len(a[5]) > 1 && a[5][0] == 'U' {
			uni = true
			if cs, err = strconv.ParseFloat(a[5][1:], 64); err != nil {
				return nil, fmt.Errorf("ReadGDEF: failed to read 'CS': %v", err)
			}
		} else {
			return nil, fmt.Errorf("ReadGDEF: failed to read 'CS': %v", err)
		}
	}
	if !uni {
		return nil, fmt.Errorf("ReadGDEF: non-uniform grids currently not supported")
	}

	gd := Definition{Eorig: oe, Norig: on, Rot: rot, Cs: cs, Nr: int(nr), Nc: int(nc)}
	if len(a) > 6 { // packed active cells, 8 per byte
		gd.act = []byte(a[6])
	}
	return &gd, nil
}

// Ncells returns the total cell count.
func (gd *Definition) Ncells() int { return gd.Nr * gd.Nc }

// CellID returns the row-major index of cell (row, col).
func (gd *Definition) CellID(row, col int) int { return row*gd.Nc + col }

// IsActive reports whether cell cid is flagged active. Grids carrying no
// bitmap are fully active.
func (gd *Definition) IsActive(cid int) bool {
	if len(gd.act) == 0 {
		return true
	}
	b := cid / 8
	if b >= len(gd.act) {
		return false
	}
	return gd.act[b]&(1<<uint(7-cid%8)) != 0
}
