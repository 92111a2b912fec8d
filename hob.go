// Package hob reads and writes the MODFLOW-2005 head-observation (HOB)
// package file: datasets 1 through 6, including multilayer proportions and
// multi-reading time series. Time resolution against the simulation calendar
// is delegated to a TimeStepper, normally the host model's discretization.
package hob

const (
	ftype       = "HOB"
	extension   = ".hob"
	defaultUnit = 39
	nameWidth   = 12 // OBSNAM field width
)

// HOB holds the package-level parameters and the observation set.
type HOB struct {
	Iuhobsv int     // unit to which observation output is diverted (0: none)
	Hobdry  float64 // simulated-equivalent value reported for dry cells
	Tomulth float64 // time-offset multiplier
	Obs     []*HeadObservation
}

// NewHOB returns a package with the standard defaults (TOMULTH 1, HOBDRY 0).
func NewHOB(obs ...*HeadObservation) *HOB {
	return &HOB{Tomulth: 1., Obs: obs}
}

// FType returns the namefile type label.
func FType() string { return ftype }

// Extension returns the conventional package-file extension.
func Extension() string { return extension }

// DefaultUnit returns the conventional package unit number.
func DefaultUnit() int { return defaultUnit }

// Dims recomputes the dataset 1 totals: NH readings over all records, MOBS
// readings belonging to multilayer records, and MAXM the widest layer span.
// Totals are never cached; callers registering the package query them fresh.
func (h *HOB) Dims() (nh, mobs, maxm int, err error) {
	for i, o := range h.Obs {
		if o == nil {
			return 0, 0, 0, validationf("observation %d is not a head observation", i+1)
		}
		nh += o.Nobs()
		if o.Multilayer() {
			mobs += o.Nobs()
		}
		if m := o.Maxm(); m > maxm {
			maxm = m
		}
	}
	return
}
