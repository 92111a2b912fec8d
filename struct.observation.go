package hob

import "strconv"

// TimeStepper resolves absolute simulation times against the host model's
// stress-period calendar. Both directions are pure lookups; the package keeps
// no reference to the host model itself.
type TimeStepper interface {
	KstpKperToffset(totim float64) (kstp, kper int, toffset float64)
	TotimFromKperToffset(kper int, toffset float64) float64
}

// LayerFrac is one multilayer proportion, keyed by zero-based layer. Pairs
// are kept in insertion order so dataset 4 always writes deterministically.
type LayerFrac struct {
	Layer int
	Frac  float64
}

// TimeSample is one resolved time/value pair of an observation series.
type TimeSample struct {
	Totim   float64 // absolute simulation time
	Irefsp  int     // zero-based stress period containing Totim
	Toffset float64 // offset from the period start, divided by TOMULTH
	Hobs    float64 // observed head (or head change, see Itt)
	Obsname string
}

// HeadObservation holds one head observation point and its time series.
// Records are fully resolved at construction and not modified after.
type HeadObservation struct {
	Obsname     string
	Layer       int // zero-based layer; negative: |Layer| layers contribute
	Row, Column int // zero-based
	Irefsp      int // zero-based reference period; negative: |Irefsp| readings
	Roff, Coff  float64
	Itt         int // 1: heads; 2: initial head then head changes
	Mlay        []LayerFrac
	TimeSeries  []TimeSample
}

// NewHeadObservation builds a fully-resolved observation record. tsd holds
// one or more [totim, hob] pairs; each is resolved to a stress period and
// offset through td, with the stored offset divided by tomulth (the simulator
// re-multiplies on load). names may be nil, in which case single readings take
// obsname verbatim and series readings are suffixed "obsname.i" (one-based).
func NewHeadObservation(td TimeStepper, tomulth float64, obsname string,
	layer, row, column, irefsp int, roff, coff float64, itt int,
	mlay []LayerFrac, tsd [][2]float64, names []string) (*HeadObservation, error) {

	if tomulth == 0. {
		return nil, validationf("observation %s: TOMULTH must be non-zero", obsname)
	}
	if len(tsd) == 0 {
		return nil, validationf("observation %s: no time series data given", obsname)
	}
	if irefsp >= 0 && len(tsd) > 1 {
		return nil, validationf("observation %s: %d readings given with non-negative IREFSP %d", obsname, len(tsd), irefsp)
	}
	if irefsp < 0 && -irefsp != len(tsd) {
		return nil, validationf("observation %s: IREFSP %d disagrees with %d readings given", obsname, irefsp, len(tsd))
	}

	if mlay == nil {
		mlay = []LayerFrac{{Layer: layer, Frac: 1.}}
	}
	if len(mlay) > 1 {
		tot := 0.
		for _, lf := range mlay {
			tot += lf.Frac
		}
		if tot != 1. {
			return nil, validationf("sum of dataset 4 proportions must equal 1.0 - sum of dataset 4 proportions = %v", tot)
		}
	}

	if names == nil {
		if len(tsd) == 1 {
			names = []string{obsname}
		} else {
			names = make([]string, len(tsd))
			for i := range tsd {
				names[i] = obsname + "." + strconv.Itoa(i+1)
			}
		}
	} else if len(names) != len(tsd) {
		return nil, validationf("observation %s: %d names given for %d readings", obsname, len(names), len(tsd))
	}

	o := HeadObservation{
		Obsname: obsname,
		Layer:   layer,
		Row:     row,
		Column:  column,
		Irefsp:  irefsp,
		Roff:    roff,
		Coff:    coff,
		Itt:     itt,
		Mlay:    mlay,
	}
	o.TimeSeries = make([]TimeSample, len(tsd))
	for i, tv := range tsd {
		_, kper, toffset := td.KstpKperToffset(tv[0])
		o.TimeSeries[i] = TimeSample{
			Totim:   tv[0],
			Irefsp:  kper,
			Toffset: toffset / tomulth,
			Hobs:    tv[1],
			Obsname: names[i],
		}
	}
	return &o, nil
}

// Multilayer reports whether the simulated equivalent blends more than one layer.
func (o *HeadObservation) Multilayer() bool { return len(o.Mlay) > 1 }

// Nobs returns the number of readings in the record's time series.
func (o *HeadObservation) Nobs() int { return len(o.TimeSeries) }

// Maxm returns the number of layers contributing to the record (1 when single-layer).
func (o *HeadObservation) Maxm() int {
	if o.Multilayer() {
		return len(o.Mlay)
	}
	return 1
}
