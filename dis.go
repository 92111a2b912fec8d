package hob

import "math"

// StressPeriod defines one interval of the simulation calendar.
type StressPeriod struct {
	Perlen float64 // period length
	Nstp   int     // number of timesteps
	Tsmult float64 // successive timestep multiplier
}

// Dis is a minimal stress-period calendar satisfying TimeStepper, for use
// when the package is handled apart from a full model discretization.
type Dis struct{ SP []StressPeriod }

// TotimFromKperToffset returns the absolute time toffset into zero-based
// period kper. Out-of-range periods clamp to the calendar ends.
func (d *Dis) TotimFromKperToffset(kper int, toffset float64) float64 {
	if kper < 0 {
		kper = 0
	}
	if kper >= len(d.SP) {
		kper = len(d.SP) - 1
	}
	t := 0.
	for k := 0; k < kper; k++ {
		t += d.SP[k].Perlen
	}
	return t + toffset
}

// KstpKperToffset locates the zero-based timestep and stress period
// containing totim, with toffset measured from the period start. Times at a
// period boundary belong to the later period; times at or beyond the calendar
// end resolve against the last period.
func (d *Dis) KstpKperToffset(totim float64) (kstp, kper int, toffset float64) {
	if len(d.SP) == 0 {
		return 0, 0, totim
	}
	t0 := 0.
	for k, sp := range d.SP {
		kper = k
		if totim < t0+sp.Perlen || k == len(d.SP)-1 {
			break
		}
		t0 += sp.Perlen
	}
	toffset = totim - t0

	sp := d.SP[kper]
	nstp := sp.Nstp
	if nstp < 1 {
		nstp = 1
	}
	m := sp.Tsmult
	if m <= 0. {
		m = 1.
	}
	dt := sp.Perlen / float64(nstp)
	if m != 1. {
		dt = sp.Perlen * (m - 1.) / (math.Pow(m, float64(nstp)) - 1.)
	}
	tt := dt
	for kstp = 0; kstp < nstp-1; kstp++ {
		if toffset <= tt {
			break
		}
		dt *= m
		tt += dt
	}
	return
}
