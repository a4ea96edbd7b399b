// Command fairdiv selects a diverse, quota-respecting subset of points
// from a CSV file.
//
// Usage:
//
//	fairdiv -csv points.csv -features 0,1 -color-col 2 \
//	    -quota red=3,blue=2 -eps-mwu 0.2 -eps-fall 0.1 -alpha 1.0 \
//	    -cadence fixed:50
//
// The CSV must have a header row; -features lists the zero-based
// column indices making up each point's feature vector, -color-col is
// the zero-based column holding the color label, and -quota is a
// comma-separated list of label=count pairs. -cadence selects the MWU
// early-stop check policy: "fixed:period" (the default, "fixed:50") or
// "stochastic:warmup,lo,hi,seed".
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/coreset"
	"github.com/fairdiv/fairdiv/falloff"
	"github.com/fairdiv/fairdiv/ingest"
	"github.com/fairdiv/fairdiv/mwu"
	"github.com/fairdiv/fairdiv/quota"
	"github.com/fairdiv/fairdiv/report"
	"github.com/fairdiv/fairdiv/rounding"
)

func main() {
	csvPath := flag.String("csv", "", "path to the input CSV file (required)")
	featuresFlag := flag.String("features", "", "comma-separated zero-based feature column indices (required)")
	colorCol := flag.Int("color-col", 0, "zero-based color label column index")
	quotaFlag := flag.String("quota", "", "comma-separated label=count pairs (required)")
	epsMWU := flag.Float64("eps-mwu", 0.2, "MWU approximation slack")
	epsFall := flag.Float64("eps-fall", 0.1, "gamma-falloff shrink factor")
	alpha := flag.Float64("alpha", 1.0, "MWU iteration-bound scale factor")
	seed := flag.Int64("seed", 1, "rounding RNG seed")
	coresetSize := flag.Int("coreset-size", 0, "optional coreset reduction target size (0 disables reduction)")
	cadenceFlag := flag.String("cadence", "fixed:50", `MWU early-stop cadence: "fixed:period" or "stochastic:warmup,lo,hi,seed"`)
	flag.Parse()

	if *csvPath == "" || *featuresFlag == "" || *quotaFlag == "" {
		flag.Usage()
		log.Fatalf("fairdiv: -csv, -features and -quota are required")
	}

	featureCols, err := parseIntList(*featuresFlag)
	if err != nil {
		log.Fatalf("fairdiv: bad -features: %v", err)
	}
	counts, err := parseQuota(*quotaFlag)
	if err != nil {
		log.Fatalf("fairdiv: bad -quota: %v", err)
	}
	cadence, err := parseCadence(*cadenceFlag)
	if err != nil {
		log.Fatalf("fairdiv: bad -cadence: %v", err)
	}

	features, labels, err := ingest.LoadCSV(*csvPath, featureCols, *colorCol)
	if err != nil {
		log.Fatalf("fairdiv: loading csv: %v", err)
	}
	if err := ingest.Standardize(features); err != nil {
		log.Fatalf("fairdiv: standardizing features: %v", err)
	}

	ids, names, q, err := quota.FromCounts(labels, counts)
	if err != nil {
		log.Fatalf("fairdiv: building quota: %v", err)
	}

	ds, err := core.NewDataset(features, ids, names)
	if err != nil {
		log.Fatalf("fairdiv: building dataset: %v", err)
	}

	target := ds.N()
	if *coresetSize > 0 && *coresetSize < target {
		target = *coresetSize
	}
	gammaUpper := 1.0
	if target > 1 {
		var producer coreset.GonzalezProducer
		reduced, g, err := producer.Reduce(ds, target)
		if err != nil {
			log.Fatalf("fairdiv: coreset reduction: %v", err)
		}
		gammaUpper = g
		if *coresetSize > 0 && *coresetSize < ds.N() {
			ds = reduced
		}
	}

	round := rounding.NewSampledRounder(rounding.WithSeed(*seed))

	res, err := falloff.Run(context.Background(), ds, q, gammaUpper, *epsMWU, *epsFall, *alpha, round, falloff.WithCadence(cadence))
	if err != nil {
		log.Fatalf("fairdiv: %v", err)
	}

	if err := report.Print(os.Stdout, res); err != nil {
		log.Fatalf("fairdiv: writing report: %v", err)
	}
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseCadence(s string) (mwu.Cadence, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("malformed cadence %q, want kind:params", s)
	}

	switch kind {
	case "fixed":
		period, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return nil, err
		}
		return mwu.Fixed(period), nil

	case "stochastic":
		parts := strings.Split(rest, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("malformed stochastic cadence %q, want warmup,lo,hi,seed", s)
		}
		nums := make([]int64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return nil, err
			}
			nums[i] = v
		}
		return mwu.Stochastic(int(nums[0]), int(nums[1]), int(nums[2]), nums[3]), nil

	default:
		return nil, fmt.Errorf("unknown cadence kind %q, want fixed or stochastic", kind)
	}
}

func parseQuota(s string) (map[string]int, error) {
	out := make(map[string]int)
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed quota pair %q", pair)
		}
		k, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSpace(kv[0])] = k
	}
	return out, nil
}
