// Command chromatix colors a graph read from an edge-list file and prints
// the resulting colors, one per line, to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/go-logr/stdr"
	"github.com/pkg/errors"

	"github.com/katalvlaran/chromatix/coloring"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/loader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chromatix", flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("f", "", "input edge-list file (required)")
	threads := fs.Int("t", runtime.GOMAXPROCS(0), "worker thread count")
	seq := fs.Bool("seq", false, "use the Sequential strategy")
	atomicCAS := fs.Bool("atomic", false, "use the AtomicCAS strategy")
	stm := fs.Bool("stm", false, "use the STM strategy")
	htm := fs.Bool("htm", false, "use the HTM strategy")
	verbosity := fs.Int("v", 0, "log verbosity")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	strategy, err := selectStrategy(*seq, *atomicCAS, *stm, *htm)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *path == "" {
		fmt.Fprintln(stderr, "chromatix: -f is required")
		return 2
	}

	stdLogger := log.New(stderr, "", log.LstdFlags)
	logger := stdr.New(stdLogger)
	stdr.SetVerbosity(*verbosity)

	f, openErr := os.Open(*path)
	if openErr != nil {
		fmt.Fprintln(stderr, errors.Wrap(openErr, "chromatix").Error())
		return 1
	}
	defer f.Close()

	n, edges, loadErr := loader.Load(f)
	if loadErr != nil {
		logger.V(2).Info("load error detail", "err", loadErr.Error())
		fmt.Fprintln(stderr, errors.Wrap(loadErr, "chromatix: parsing input").Error())
		return 1
	}
	logger.Info("loaded graph", "vertices", n, "edges", len(edges))

	g, buildErr := graphstore.Build(n, edges, graphstore.WithLogger(logger))
	if buildErr != nil {
		fmt.Fprintln(stderr, errors.Wrap(buildErr, "chromatix: invalid graph").Error())
		return 1
	}

	colors, stats, colorErr := coloring.Color(g, strategy,
		coloring.WithThreads(*threads),
		coloring.WithLogger(logger),
	)
	if colorErr != nil {
		fmt.Fprintln(stderr, errors.Wrap(colorErr, "chromatix: internal error").Error())
		return 3
	}

	logger.Info("coloring complete",
		"strategy", strategyName(strategy),
		"threads", *threads,
		"final_ceiling", stats.FinalCeiling,
		"resolver_iterations", stats.ResolverIterations,
		"conflicts_repaired", stats.ConflictsRepaired,
		"time_total", stats.TimeTotal,
	)

	for _, c := range colors {
		fmt.Fprintln(stdout, c)
	}
	return 0
}

func selectStrategy(seq, atomicCAS, stm, htm bool) (coloring.Strategy, error) {
	type choice struct {
		flagged bool
		kind    coloring.Strategy
	}
	choices := []choice{
		{seq, coloring.Sequential},
		{atomicCAS, coloring.AtomicCAS},
		{stm, coloring.STM},
		{htm, coloring.HTM},
	}
	count := 0
	var s coloring.Strategy
	for _, c := range choices {
		if c.flagged {
			count++
			s = c.kind
		}
	}
	if count != 1 {
		return 0, errors.New("chromatix: exactly one of -seq|-atomic|-stm|-htm is required")
	}
	return s, nil
}

func strategyName(s coloring.Strategy) string {
	switch s {
	case coloring.Sequential:
		return "sequential"
	case coloring.AtomicCAS:
		return "atomic_cas"
	case coloring.STM:
		return "stm"
	case coloring.HTM:
		return "htm"
	default:
		return "unknown"
	}
}
