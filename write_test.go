package hob

import (
	"strings"
	"testing"
)

func TestWriteSingleReading(t *testing.T) {
	td := testDis()
	o, err := NewHeadObservation(td, 1., "W1", 0, 5, 5, 1, 0., 0., 1, nil,
		[][2]float64{{12.5, 54.4}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := &HOB{Iuhobsv: 51, Hobdry: -999., Tomulth: 1., Obs: []*HeadObservation{o}}

	lns, err := h.encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(lns) != 4 { // heading, datasets 1-3; no datasets 4-6
		t.Fatalf("%d lines written, expecting 4", len(lns))
	}
	if lns[1] != "         1         0         1        51      -999" {
		t.Fatalf("dataset 1 = %q", lns[1])
	}
	if lns[2] != "         1" {
		t.Fatalf("dataset 2 = %q", lns[2])
	}

	ds3 := lns[3]
	if !strings.HasPrefix(ds3, "W1          ") { // 12-character name field
		t.Fatalf("dataset 3 name field = %q", ds3[:12])
	}
	if ds3[15:25] != "         1" { // first 10-character numeric field
		t.Fatalf("dataset 3 layer field = %q", ds3[15:25])
	}
	f := strings.Fields(ds3)
	want := []string{"W1", "1", "6", "6", "2", "2.50", "0.0000", "0.0000", "54.4000"}
	for i, w := range want {
		if f[i] != w {
			t.Fatalf("dataset 3 field %d = %q, expecting %q", i, f[i], w)
		}
	}
	if !strings.Contains(ds3, "# DATASET 3 - Observation 1") {
		t.Fatalf("dataset 3 tag missing: %q", ds3)
	}
}

func TestWriteMultiReading(t *testing.T) {
	td := testDis()
	o, err := NewHeadObservation(td, 1., "W2", 0, 5, 5, -2, 0., 0., 2, nil,
		[][2]float64{{5.25, 54.4}, {12.5, 55.2}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := &HOB{Iuhobsv: 51, Hobdry: -999., Tomulth: 1., Obs: []*HeadObservation{o}}

	lns, err := h.encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(lns) != 7 { // heading, 1, 2, 3, 5, and two dataset 6 lines
		t.Fatalf("%d lines written, expecting 7", len(lns))
	}

	f := strings.Fields(lns[3])
	if f[4] != "-2" {
		t.Fatalf("dataset 3 IREFSP = %q, expecting -2", f[4])
	}
	if f[5] != "0.00" || f[8] != "0.0000" { // series values live in dataset 6
		t.Fatalf("dataset 3 placeholders = %q, %q", f[5], f[8])
	}

	if !strings.HasPrefix(lns[4], "         2") || !strings.Contains(lns[4], "# DATASET 5 - Observation 1") {
		t.Fatalf("dataset 5 = %q", lns[4])
	}

	f = strings.Fields(lns[5])
	want := []string{"W2.1", "1", "5.2500", "54.4000"}
	for i, w := range want {
		if f[i] != w {
			t.Fatalf("dataset 6 field %d = %q, expecting %q", i, f[i], w)
		}
	}
	f = strings.Fields(lns[6])
	if f[0] != "W2.2" || f[1] != "2" {
		t.Fatalf("dataset 6 second reading = %q %q", f[0], f[1])
	}
}

func TestWriteMultilayer(t *testing.T) {
	td := testDis()
	o, err := NewHeadObservation(td, 1., "ML", -2, 3, 3, 0, 0., 0., 1,
		[]LayerFrac{{0, .5}, {2, .5}}, [][2]float64{{0.25, 49.5}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := &HOB{Tomulth: 1., Obs: []*HeadObservation{o}}

	lns, err := h.encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(lns) != 5 { // heading, 1, 2, 3, 4
		t.Fatalf("%d lines written, expecting 5", len(lns))
	}
	if strings.Fields(lns[3])[1] != "-2" { // multilayer sentinel preserved
		t.Fatalf("dataset 3 layer = %q", strings.Fields(lns[3])[1])
	}
	if !strings.HasPrefix(lns[4], "    1    0.5000    3    0.5000") {
		t.Fatalf("dataset 4 = %q", lns[4])
	}

	nh, mobs, maxm, err := h.Dims()
	if err != nil {
		t.Fatal(err)
	}
	if nh != 1 || mobs != 1 || maxm != 2 {
		t.Fatalf("dims = %d %d %d, expecting 1 1 2", nh, mobs, maxm)
	}
}

func TestWriteNilObservation(t *testing.T) {
	h := &HOB{Tomulth: 1., Obs: []*HeadObservation{nil}}
	if _, err := h.encode(); err == nil {
		t.Fatal("nil observation accepted")
	}
}
