package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k3l.io/go-linalg/internal/bench"
	"k3l.io/go-linalg/pkg/parallel"
	"k3l.io/go-linalg/pkg/util"
)

var (
	// benchCmd represents the bench command
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Time the dense multiplication kernels.",
		Long: `Time the dense multiplication kernels over the shape classes
behind the dispatcher breakpoint tables.
Each case runs every kernel in its family and reports the best and mean
wall times next to the kernel the dispatcher would have picked,
so that the breakpoints can be re-tuned on new hardware.`,
		Args: cobra.MatchAll(cobra.NoArgs),
		Run:  runBench,
	}
	benchKinds          []string
	benchRepeats        int
	benchSeed           int64
	benchVerify         bool
	benchWorkers        int
	benchOutputFilename string
)

func benchCases() ([]bench.Case, error) {
	template := bench.Case{
		Repeats: benchRepeats,
		Seed:    benchSeed,
		Verify:  benchVerify,
	}
	var cases []bench.Case
	for _, kind := range benchKinds {
		switch kind {
		case bench.Matrix.String():
			cases = append(cases, bench.MatrixSweep(template)...)
		case bench.Vector.String():
			cases = append(cases, bench.VectorSweep(template)...)
		case bench.Transpose.String():
			cases = append(cases, bench.TransposeSweep(template)...)
		default:
			return nil, errors.Errorf("unknown kind %#v", kind)
		}
	}
	return cases, nil
}

func writeResults(results []bench.Result, filename string) error {
	f, err := util.OpenOutputFile(filename)
	if err != nil {
		return errors.Wrapf(err, "cannot open output file %#v", filename)
	}
	defer util.Close(f)
	w := tabwriter.NewWriter(f, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tKIND\tSHAPE\tALGORITHM\tBEST\tMEAN")
	for _, r := range results {
		mark := ""
		if r.Selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%dx%d\t%s%s\t%v\t%v\n",
			r.Case, r.Kind, r.Rows, r.Inner, r.Cols,
			r.Algorithm, mark, r.Best, r.Mean)
	}
	return errors.Wrap(w.Flush(), "cannot write results table")
}

func runBench( /*cmd*/ *cobra.Command /*args*/, []string) {
	if benchWorkers > 0 {
		parallel.SetWorkers(benchWorkers)
	}
	cases, err := benchCases()
	if err != nil {
		logger.Err(err).Msg("cannot assemble benchmark cases")
		return
	}
	ctx := logger.WithContext(context.Background())
	spin := spinner.New(spinner.CharSets[11], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr))
	spin.Start()
	var results []bench.Result
	for i, c := range cases {
		spin.Suffix = fmt.Sprintf(" %s (%d/%d)", c.Name, i+1, len(cases))
		caseResults, err := bench.Run(ctx, c)
		if err != nil {
			spin.Stop()
			logger.Err(err).Str("case", c.Name).
				Msg("cannot run benchmark case")
			return
		}
		results = append(results, caseResults...)
	}
	spin.Stop()
	if err := writeResults(results, benchOutputFilename); err != nil {
		logger.Err(err).Msg("cannot write results")
	}
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringSliceVar(&benchKinds, "kinds",
		[]string{"matrix", "vector", "transpose"},
		`Product families to sweep (matrix, vector, transpose).`)
	benchCmd.Flags().IntVar(&benchRepeats, "repeats", 5,
		`Timing repeats per kernel.
Best and mean wall times over the repeats are reported.`)
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1,
		`Seed for the random operand entries.`)
	benchCmd.Flags().BoolVar(&benchVerify, "verify", true,
		`Check every kernel product against a gonum baseline.`)
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0,
		`Worker count for the concurrent kernels.
0 (default) uses one worker per CPU.`)
	benchCmd.Flags().StringVarP(&benchOutputFilename, "output", "o",
		"-",
		`Results table file name.
"" suppresses output; "-" (default) uses standard output`)
}
