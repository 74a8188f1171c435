package main

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-cryptg/crypto/blockmode"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode/blockmode_ige"
	"github.com/brendoncarroll/go-cryptg/crypto/pqfactor"
)

var (
	benchDuration time.Duration
	benchSize     int
)

func init() {
	benchCmd.Flags().DurationVar(&benchDuration, "duration", time.Second, "how long to run each benchmark")
	benchCmd.Flags().IntVar(&benchSize, "size", 4096, "IGE buffer size in bytes, rounded down to whole blocks")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure IGE and factorization throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := bencher{clock: clockwork.NewRealClock(), duration: benchDuration}
		out := cmd.OutOrStdout()

		size := benchSize - benchSize%blockmode_ige.BlockSize
		for _, name := range []string{"aes", "twofish"} {
			r, err := b.run(igeWorkload(schemes[name], size))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "ige-%s\t%s\t%.1f MB/s\n", name, r, r.opsPerSecond()*float64(size)/1e6)
		}

		r, err := b.run(func() error {
			_, _, err := pqfactor.Factorize(0x17ED48941A08F981)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "pqfactor\t%s\n", r)
		return nil
	},
}

type benchResult struct {
	ops     int
	elapsed time.Duration
}

func (r benchResult) opsPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.ops) / r.elapsed.Seconds()
}

func (r benchResult) String() string {
	return fmt.Sprintf("%d ops in %v (%.0f ops/s)", r.ops, r.elapsed, r.opsPerSecond())
}

type bencher struct {
	clock    clockwork.Clock
	duration time.Duration
}

// run calls fn until the duration has elapsed on the bencher's clock.
func (b bencher) run(fn func() error) (benchResult, error) {
	var r benchResult
	start := b.clock.Now()
	for r.elapsed < b.duration {
		if err := fn(); err != nil {
			return r, err
		}
		r.ops++
		r.elapsed = b.clock.Now().Sub(start)
	}
	return r, nil
}

func igeWorkload(s blockmode.SchemeK256IV256, size int) func() error {
	var key, iv [32]byte
	buf := make([]byte, size)
	return func() error {
		return s.Encrypt(buf, &key, &iv, buf)
	}
}
