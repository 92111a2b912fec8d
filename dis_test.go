package hob

import (
	"math"
	"testing"
)

func TestDisInverse(t *testing.T) {
	td := testDis()
	for _, totim := range []float64{0., 0.25, 5.25, 12.5, 29.999, 40.125} {
		_, kper, toffset := td.KstpKperToffset(totim)
		if got := td.TotimFromKperToffset(kper, toffset); math.Abs(got-totim) > 1e-9 {
			t.Fatalf("totim %v -> (%d, %v) -> %v", totim, kper, toffset, got)
		}
	}
}

func TestDisBoundaries(t *testing.T) {
	td := testDis()
	if _, kper, toffset := td.KstpKperToffset(10.); kper != 1 || toffset != 0. {
		t.Fatalf("period boundary resolved to (%d, %v), expecting (1, 0)", kper, toffset)
	}
	if _, kper, toffset := td.KstpKperToffset(75.); kper != 2 || toffset != 45. {
		t.Fatalf("time beyond calendar resolved to (%d, %v), expecting (2, 45)", kper, toffset)
	}
	if got := td.TotimFromKperToffset(2, 5.); got != 35. {
		t.Fatalf("TotimFromKperToffset(2, 5) = %v, expecting 35", got)
	}
	if got := td.TotimFromKperToffset(-1, 5.); got != 5. {
		t.Fatalf("clamped period = %v, expecting 5", got)
	}
}

func TestDisTimesteps(t *testing.T) {
	td := &Dis{SP: []StressPeriod{{Perlen: 10., Nstp: 4, Tsmult: 2.}}}
	// timestep lengths 2/3, 4/3, 8/3, 16/3: cumulative 0.667, 2, 4.667, 10
	kstp, kper, toffset := td.KstpKperToffset(3.)
	if kper != 0 || kstp != 2 {
		t.Fatalf("t = 3 resolved to kstp %d kper %d", kstp, kper)
	}
	if math.Abs(toffset-3.) > 1e-9 {
		t.Fatalf("toffset = %v, expecting 3", toffset)
	}
	if kstp, _, _ := td.KstpKperToffset(0.5); kstp != 0 {
		t.Fatalf("t = 0.5 resolved to kstp %d", kstp)
	}
	if kstp, _, _ := td.KstpKperToffset(25.); kstp != 3 {
		t.Fatalf("t beyond period resolved to kstp %d", kstp)
	}
}
