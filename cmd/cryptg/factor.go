package main

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/brendoncarroll/go-cryptg/binding"
	"github.com/brendoncarroll/go-cryptg/crypto/pqfactor"
)

var (
	factorTimeout  time.Duration
	factorWorkers  int
	factorAttempts int
	factorMaxIter  uint64
)

func init() {
	f := factorCmd.Flags()
	f.DurationVar(&factorTimeout, "timeout", 0, "give up after this long (0 means no limit)")
	f.IntVar(&factorWorkers, "workers", runtime.GOMAXPROCS(0), "number of values factored at once")
	f.IntVar(&factorAttempts, "attempts", 16, "number of polynomial constants to try")
	f.Uint64Var(&factorMaxIter, "max-iterations", pqfactor.DefaultMaxIterations, "cycle length at which a constant is abandoned")
}

var factorCmd = &cobra.Command{
	Use:   "factor pq...",
	Short: "Factor semiprimes into (p, q), accepts decimal or 0x prefixed hex",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pqs, err := parsePQs(args)
		if err != nil {
			return err
		}
		if factorWorkers < 1 || factorAttempts < 1 || factorMaxIter < 1 {
			return errors.New("--workers, --attempts and --max-iterations must be positive")
		}
		ctx := context.Background()
		if factorTimeout > 0 {
			var cf context.CancelFunc
			ctx, cf = context.WithTimeout(ctx, factorTimeout)
			defer cf()
		}
		consts := make([]uint64, factorAttempts)
		for i := range consts {
			consts[i] = uint64(i + 1)
		}
		f := pqfactor.New(
			pqfactor.WithConstants(consts...),
			pqfactor.WithMaxIterations(factorMaxIter),
			pqfactor.WithLogger(log),
		)
		pairs, err := factorAll(ctx, f, pqs, factorWorkers)
		if err != nil {
			return err
		}
		for i, pq := range pqs {
			fmt.Fprintf(cmd.OutOrStdout(), "%d = %d * %d\n", pq, pairs[i][0], pairs[i][1])
		}
		return nil
	},
}

// parsePQs parses args and returns them sorted with duplicates removed.
func parsePQs(args []string) ([]uint64, error) {
	var pqs []uint64
	for _, arg := range args {
		pq, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", arg)
		}
		pqs = append(pqs, pq)
	}
	slices.Sort(pqs)
	return slices.Compact(pqs), nil
}

func factorAll(ctx context.Context, f *pqfactor.Factorizer, pqs []uint64, workers int) ([][2]uint64, error) {
	pairs := make([][2]uint64, len(pqs))
	sem := semaphore.NewWeighted(int64(workers))
	eg, ctx := errgroup.WithContext(ctx)
	var acquireErr error
	for i := range pqs {
		i := i
		if acquireErr = sem.Acquire(ctx, 1); acquireErr != nil {
			break
		}
		eg.Go(func() error {
			defer sem.Release(1)
			p, q, err := binding.FactorizeContext(ctx, f, pqs[i])
			if err != nil {
				return errors.Wrapf(err, "factoring %d", pqs[i])
			}
			log.Debugf("%d = %d * %d", pqs[i], p, q)
			pairs[i] = [2]uint64{p, q}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}
	return pairs, nil
}
