package hob

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

// HobResults holds the simulated-to-observed listing MODFLOW writes to the
// IUHOBSV unit after a run.
type HobResults struct {
	Obsname  []string
	Sim, Obs []float64
}

// ReadHobOut reads an observation output file: an optional quoted header line
// followed by one "SIMULATED OBSERVED OBSNAME" row per reading.
func ReadHobOut(fp string) (*HobResults, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, &FormatError{Msg: fmt.Sprintf("file %s does not exist", fp)}
	}
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("ReadHobOut failed: %v", err)}
	}
	var r HobResults
	for i, ln := range lns {
		t := strings.Fields(ln)
		if len(t) == 0 || strings.HasPrefix(t[0], `"`) || strings.HasPrefix(t[0], "#") {
			continue
		}
		if len(t) < 3 {
			return nil, &FormatError{Line: i + 1, Msg: fmt.Sprintf("expecting 3 fields, found %d", len(t))}
		}
		sim, err := strconv.ParseFloat(t[0], 64)
		if err != nil {
			return nil, &FormatError{Line: i + 1, Msg: fmt.Sprintf("failed to read 'SIMULATED EQUIVALENT': %v", err)}
		}
		obs, err := strconv.ParseFloat(t[1], 64)
		if err != nil {
			return nil, &FormatError{Line: i + 1, Msg: fmt.Sprintf("failed to read 'OBSERVED VALUE': %v", err)}
		}
		r.Sim = append(r.Sim, sim)
		r.Obs = append(r.Obs, obs)
		r.Obsname = append(r.Obsname, t[2])
	}
	return &r, nil
}

// Screen drops readings whose simulated equivalent carries the dry-cell
// sentinel, returning the remaining observed and simulated values.
func (r *HobResults) Screen(hobdry float64) (obs, sim []float64) {
	obs, sim = make([]float64, 0, len(r.Sim)), make([]float64, 0, len(r.Sim))
	for i := range r.Sim {
		if r.Sim[i] == hobdry {
			continue
		}
		obs = append(obs, r.Obs[i])
		sim = append(sim, r.Sim[i])
	}
	return
}

// Summary reports goodness-of-fit over the non-dry readings.
func (r *HobResults) Summary(hobdry float64) string {
	obs, sim := r.Screen(hobdry)
	if len(sim) == 0 {
		return "  no active observations"
	}
	kge := objfunc.KGE(obs, sim)
	nse := objfunc.NSE(obs, sim)
	rmse := objfunc.RMSE(obs, sim)
	bias := objfunc.Bias(obs, sim)
	return fmt.Sprintf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f  (n = %d)", kge, nse, rmse, bias, len(sim))
}
