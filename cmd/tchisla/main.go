// Command tchisla solves Tchisla puzzles: it writes the target as an
// expression over a single repeated digit, with the fewest digit
// characters, for every digit 1..9.
//
// For each digit the integer domain is searched first, unbounded unless
// --limit caps it; its
// level then caps the rational-domain search, whose richer operator set
// can only shorten the answer.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"tchisla/internal/parallel"
	"tchisla/pkg/logging"
	"tchisla/pkg/solver"
)

const separator = "--------------------\n"

type options struct {
	digits  []int
	limit   int
	workers int
	verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "tchisla TARGET",
		Short: "Solve Tchisla puzzles for every digit 1..9",
		Long: "tchisla searches for the shortest expression of TARGET using a single\n" +
			"repeated digit, the four elementary operators, exponentiation, square\n" +
			"root, and factorial. Each digit is solved in the integer domain first,\n" +
			"then in the rational domain bounded by the integer result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || target == 0 {
				return fmt.Errorf("target must be a positive integer, got %q", args[0])
			}
			for _, digit := range opts.digits {
				if digit < 1 || digit > 9 {
					return fmt.Errorf("digit must be in 1..9, got %d", digit)
				}
			}
			return run(cmd.Context(), cmd.OutOrStdout(), target, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.digits, "digits", []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		"digits to solve")
	cmd.Flags().IntVar(&opts.limit, "limit", 0,
		"maximum search level, 0 for unbounded")
	cmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(),
		"digit strains searched concurrently")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log per-level search progress")

	return cmd
}

func run(ctx context.Context, out io.Writer, target uint64, opts options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(logging.Config{Level: level})

	// Strains are independent; transcripts are buffered per digit and
	// emitted in digit order so concurrency never reorders output.
	transcripts, err := parallel.Map(ctx, opts.workers, opts.digits,
		func(_ context.Context, digit int) ([]byte, error) {
			return solveDigit(target, digit, opts.limit, logger), nil
		})
	if err != nil {
		return err
	}

	for _, transcript := range transcripts {
		if _, err := out.Write(transcript); err != nil {
			return err
		}
	}
	return nil
}

// solveDigit renders the full transcript for one digit: the integer pass,
// then the rational pass bounded by the integer level.
func solveDigit(target uint64, digit, limit int, logger *slog.Logger) []byte {
	var buf bytes.Buffer

	entry := solver.NewEntryDictionary(digit)
	if search(entry, solver.EntryOf(target), limit, "Z", logger) {
		limit = entry.Level()
		report(&buf, target, digit, "Z", entry.Level())
		breakdown := solver.NewBreakdown[solver.Entry](&buf)
		entry.BFS(solver.EntryOf(target), breakdown.Visit)
		buf.WriteByte('\n')
	}

	fraction := solver.NewFractionDictionary(digit)
	if search(fraction, solver.FractionOf(target), limit, "Q", logger) {
		report(&buf, target, digit, "Q", fraction.Level())
		breakdown := solver.NewBreakdown[solver.Fraction](&buf)
		fraction.BFS(solver.FractionOf(target), breakdown.Visit)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// search drives the dictionary like Build does, logging each grown level.
func search[N solver.Number[N]](dict *solver.Dictionary[N], target N, limit int, domain string, logger *slog.Logger) bool {
	for !dict.Contains(target) {
		if limit > 0 && dict.Level() >= limit {
			return false
		}
		dict.Grow()
		logger.Debug("level grown",
			"digit", dict.Digit(), "domain", domain,
			"level", dict.Level(), "values", dict.Size())
	}
	logger.Info("search finished",
		"digit", dict.Digit(), "domain", domain, "level", dict.Level())
	return true
}

func report(w io.Writer, target uint64, digit int, domain string, level int) {
	fmt.Fprintf(w, "%d#%d in %s: %d digits\n%s", target, digit, domain, level, separator)
}
