package hob

import (
	"fmt"
	"io"
	"strings"

	"github.com/maseology/mmio"
)

const heading = "# HOB package for MODFLOW-2005, generated by hob."

// encode builds the package file line by line, datasets 0 through 6. Layer,
// row, column and reference-period fields are one-based on file; negative
// (multilayer/multi-reading) sentinels are written unshifted.
func (h *HOB) encode() ([]string, error) {
	nh, mobs, maxm, err := h.Dims()
	if err != nil {
		return nil, err
	}

	lns := make([]string, 0, len(h.Obs)+3)
	lns = append(lns, heading)
	lns = append(lns, fmt.Sprintf("%10d%10d%10d%10d%10.4g", nh, mobs, maxm, h.Iuhobsv, h.Hobdry))
	lns = append(lns, fmt.Sprintf("%10.4g", h.Tomulth))

	for i, o := range h.Obs {
		layer, irefsp := o.Layer, o.Irefsp
		if layer >= 0 {
			layer++
		}
		if irefsp >= 0 {
			irefsp++
		}
		toffset, hobs := 0., 0.
		if o.Nobs() == 1 { // inline reading; series live in dataset 6
			toffset = o.TimeSeries[0].Toffset
			hobs = o.TimeSeries[0].Hobs
		}
		lns = append(lns, fmt.Sprintf("%-12s   %10d%10d%10d%10d%10.2f%10.4f%10.4f%10.4f  # DATASET 3 - Observation %d",
			o.Obsname, layer, o.Row+1, o.Column+1, irefsp, toffset, o.Roff, o.Coff, hobs, i+1))

		if o.Multilayer() {
			var sb strings.Builder
			for _, lf := range o.Mlay {
				fmt.Fprintf(&sb, "%5d%10.4f", lf.Layer+1, lf.Frac)
			}
			fmt.Fprintf(&sb, "  # DATASET 4 - Observation %d", i+1)
			lns = append(lns, sb.String())
		}

		if irefsp < 0 {
			lns = append(lns, fmt.Sprintf("%10d%s  # DATASET 5 - Observation %d", o.Itt, strings.Repeat(" ", 85), i+1))
		}

		if o.Nobs() > 1 {
			for j, s := range o.TimeSeries {
				lns = append(lns, fmt.Sprintf("%-12s   %10d%10.4f%10.4f%s  # DATASET 6 - Observation %d.%d",
					s.Obsname, s.Irefsp+1, s.Toffset, s.Hobs, strings.Repeat(" ", 50), i+1, j+1))
			}
		}
	}
	return lns, nil
}

// Write streams the package file to w.
func (h *HOB) Write(w io.Writer) error {
	lns, err := h.encode()
	if err != nil {
		return err
	}
	for _, ln := range lns {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return fmt.Errorf("hob.Write() failed: %v", err)
		}
	}
	return nil
}

// SaveAs writes the package file to fp.
func (h *HOB) SaveAs(fp string) error {
	lns, err := h.encode()
	if err != nil {
		return err
	}
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("hob.SaveAs() failed: %v", err)
	}
	defer tw.Close()
	for _, ln := range lns {
		tw.WriteLine(ln)
	}
	return nil
}
