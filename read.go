package hob

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// ReadHOB loads an existing package file, resolving observation times through
// td. Positive on-file reference periods are returned zero-based; negative
// multi-reading sentinels are kept as read.
//
// Layer-sign convention: any non-positive layer field is taken as multilayer
// and |layer| weight pairs are read from dataset 4, so a literal zero layer
// consumes a dataset 4 line carrying no pairs. The writer never produces such
// a field; the convention follows the original format readers.
func ReadHOB(fp string, td TimeStepper) (*HOB, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, &FormatError{Msg: fmt.Sprintf("file %s does not exist", fp)}
	}
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("ReadHOB failed: %v", err)}
	}
	return parseHOB(lns, td)
}

// hobParser is a line cursor over the package file.
type hobParser struct {
	lns []string
	pos int
}

// next returns the fields of the next line, requiring at least n tokens.
func (p *hobParser) next(n int) ([]string, int, error) {
	if p.pos >= len(p.lns) {
		return nil, p.pos, &FormatError{Line: p.pos, Msg: "unexpected end of file"}
	}
	p.pos++
	t := strings.Fields(p.lns[p.pos-1])
	if len(t) < n {
		return nil, p.pos, &FormatError{Line: p.pos, Msg: fmt.Sprintf("expecting %d fields, found %d", n, len(t))}
	}
	return t, p.pos, nil
}

func parseInt(s, name string, ln int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Line: ln, Msg: fmt.Sprintf("failed to read '%s': %v", name, err)}
	}
	return i, nil
}

func parseFloat(s, name string, ln int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FormatError{Line: ln, Msg: fmt.Sprintf("failed to read '%s': %v", name, err)}
	}
	return v, nil
}

func parseHOB(lns []string, td TimeStepper) (*HOB, error) {
	p := &hobParser{lns: lns}

	// dataset 0: leading comments
	for p.pos < len(p.lns) && strings.HasPrefix(p.lns[p.pos], "#") {
		p.pos++
	}

	// dataset 1
	t, ln, err := p.next(5)
	if err != nil {
		return nil, err
	}
	nh, err := parseInt(t[0], "NH", ln)
	if err != nil {
		return nil, err
	}
	iuhobsv, err := parseInt(t[3], "IUHOBSV", ln)
	if err != nil {
		return nil, err
	}
	hobdry, err := parseFloat(t[4], "HOBDRY", ln)
	if err != nil {
		return nil, err
	}

	// dataset 2
	t, ln, err = p.next(1)
	if err != nil {
		return nil, err
	}
	tomulth, err := parseFloat(t[0], "TOMULTH", ln)
	if err != nil {
		return nil, err
	}

	h := &HOB{Iuhobsv: iuhobsv, Hobdry: hobdry, Tomulth: tomulth}
	nobs := 0
	for nobs < nh {
		// dataset 3
		t, ln, err = p.next(9)
		if err != nil {
			return nil, err
		}
		obsnam := t[0]
		layer, err := parseInt(t[1], "LAYER", ln)
		if err != nil {
			return nil, err
		}
		row, err := parseInt(t[2], "ROW", ln)
		if err != nil {
			return nil, err
		}
		col, err := parseInt(t[3], "COLUMN", ln)
		if err != nil {
			return nil, err
		}
		irefsp0, err := parseInt(t[4], "IREFSP", ln)
		if err != nil {
			return nil, err
		}
		toffset, err := parseFloat(t[5], "TOFFSET", ln)
		if err != nil {
			return nil, err
		}
		roff, err := parseFloat(t[6], "ROFF", ln)
		if err != nil {
			return nil, err
		}
		coff, err := parseFloat(t[7], "COFF", ln)
		if err != nil {
			return nil, err
		}
		hob, err := parseFloat(t[8], "HOBS", ln)
		if err != nil {
			return nil, err
		}
		row, col = row-1, col-1

		// dataset 4
		var mlay []LayerFrac
		if layer > 0 {
			layer--
			mlay = []LayerFrac{{Layer: layer, Frac: 1.}}
		} else {
			nm := -layer
			t, ln, err = p.next(2 * nm)
			if err != nil {
				return nil, err
			}
			mlay = make([]LayerFrac, nm)
			for j := 0; j < nm; j++ {
				k, err := parseInt(t[2*j], "MLAY", ln)
				if err != nil {
					return nil, err
				}
				f, err := parseFloat(t[2*j+1], "PR", ln)
				if err != nil {
					return nil, err
				}
				mlay[j] = LayerFrac{Layer: k - 1, Frac: f}
			}
		}

		// datasets 5 and 6
		var o *HeadObservation
		if irefsp0 > 0 {
			totim := td.TotimFromKperToffset(irefsp0-1, toffset*tomulth)
			o, err = NewHeadObservation(td, tomulth, obsnam, layer, row, col, irefsp0-1,
				roff, coff, 1, mlay, [][2]float64{{totim, hob}}, []string{obsnam})
			if err != nil {
				return nil, err
			}
			nobs++
		} else {
			t, ln, err = p.next(1)
			if err != nil {
				return nil, err
			}
			itt, err := parseInt(t[0], "ITT", ln)
			if err != nil {
				return nil, err
			}
			n := -irefsp0
			names, tsd := make([]string, 0, n), make([][2]float64, 0, n)
			for j := 0; j < n; j++ {
				t, ln, err = p.next(4)
				if err != nil {
					return nil, err
				}
				kper, err := parseInt(t[1], "IREFSP", ln)
				if err != nil {
					return nil, err
				}
				toff, err := parseFloat(t[2], "TOFFSET", ln)
				if err != nil {
					return nil, err
				}
				hob, err := parseFloat(t[3], "HOBS", ln)
				if err != nil {
					return nil, err
				}
				names = append(names, t[0])
				tsd = append(tsd, [2]float64{td.TotimFromKperToffset(kper-1, toff*tomulth), hob})
				nobs++
			}
			o, err = NewHeadObservation(td, tomulth, obsnam, layer, row, col, irefsp0,
				roff, coff, itt, mlay, tsd, names)
			if err != nil {
				return nil, err
			}
		}
		h.Obs = append(h.Obs, o)
	}

	if nobs != nh {
		return nil, &IntegrityFault{Want: nh, Got: nobs}
	}
	return h, nil
}
