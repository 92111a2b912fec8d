package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/maseology/hob"
	"github.com/maseology/hob/grid"
	"github.com/maseology/mmio"
)

func main() {
	hobFP := flag.String("hob", "", "HOB package file")
	gdefFP := flag.String("gdef", "", "grid definition file (optional)")
	outFP := flag.String("out", "", "observation output file (optional)")
	perlens := flag.String("perlens", "1", "comma-delimited stress period lengths")
	flag.Parse()
	if *hobFP == "" {
		flag.Usage()
		log.Fatalf("hobinfo: no HOB file given")
	}

	tt := mmio.NewTimer()
	defer tt.Lap("hobinfo complete")

	td := func() *hob.Dis {
		ss := strings.Split(*perlens, ",")
		sp := make([]hob.StressPeriod, len(ss))
		for i, s := range ss {
			p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				log.Fatalf("hobinfo: bad period length %q: %v", s, err)
			}
			sp[i] = hob.StressPeriod{Perlen: p, Nstp: 1, Tsmult: 1.}
		}
		return &hob.Dis{SP: sp}
	}()

	h, err := hob.ReadHOB(*hobFP, td)
	if err != nil {
		log.Fatalf("hobinfo: %v", err)
	}
	nh, mobs, maxm, err := h.Dims()
	if err != nil {
		log.Fatalf("hobinfo: %v", err)
	}

	fmt.Printf(" %s: %d observations; %d readings (%d multilayer); widest layer span %d\n", *hobFP, len(h.Obs), nh, mobs, maxm)
	fmt.Printf("  IUHOBSV: %d  HOBDRY: %g  TOMULTH: %g\n", h.Iuhobsv, h.Hobdry, h.Tomulth)
	for _, o := range h.Obs {
		s0 := o.TimeSeries[0]
		fmt.Printf("  %-12s layer %3d (%2d,%2d) %2d reading(s), first at t = %g\n",
			o.Obsname, o.Layer, o.Row, o.Column, o.Nobs(), s0.Totim)
	}

	if *gdefFP != "" {
		gd, err := grid.ReadGDEF(*gdefFP)
		if err != nil {
			log.Fatalf("hobinfo: %v", err)
		}
		if err := h.Check(gd); err != nil {
			log.Fatalf("hobinfo: check failed: %v", err)
		}
		fmt.Printf("  passed checks against %d x %d grid\n", gd.Nr, gd.Nc)
	}

	if *outFP != "" {
		r, err := hob.ReadHobOut(*outFP)
		if err != nil {
			log.Fatalf("hobinfo: %v", err)
		}
		fmt.Println(r.Summary(h.Hobdry))
	}
}
