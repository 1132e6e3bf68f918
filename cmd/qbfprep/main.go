// Command qbfprep simplifies a QDIMACS prenex-CNF instance and writes the
// simplified formula back out in QDIMACS, optionally alongside a QRAT proof
// trace (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rhartert/qbfprep/internal/qbf"
	"github.com/rhartert/qbfprep/internal/qdimacs"
	"github.com/rhartert/qbfprep/internal/qrat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagQRAT = flag.String(
	"qrat",
	"",
	"write a QRAT proof trace to this file",
)

var flagTimeLimit = flag.Duration(
	"timelimit",
	0,
	"wall-clock preprocessing budget, 0 = unbounded",
)

var flagVerbose = flag.Int(
	"verbose",
	0,
	"verbosity level (0-3); >0 also prints a live progress line",
)

var flagSet = flag.String(
	"set",
	"",
	"comma-separated option overrides (name=value, no-name, or bare name)",
)

// exit codes follow the SAT/QBF competition convention.
const (
	exitUnknown = 0
	exitSAT     = 10
	exitUNSAT   = 20
)

type config struct {
	instanceFile string
	qratFile     string
	timeLimit    time.Duration
	verbose      int
	overrides    []string
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	var overrides []string
	if *flagSet != "" {
		overrides = strings.Split(*flagSet, ",")
	}

	return &config{
		instanceFile: flag.Arg(0),
		qratFile:     *flagQRAT,
		timeLimit:    *flagTimeLimit,
		verbose:      *flagVerbose,
		overrides:    overrides,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

func run(cfg *config) (int, error) {
	e, err := qdimacs.ParseFile(cfg.instanceFile)
	if err != nil {
		return exitUnknown, fmt.Errorf("could not parse instance: %w", err)
	}

	for _, ov := range cfg.overrides {
		if err := e.Opts.ParseSetting(ov); err != nil {
			fmt.Fprintf(os.Stderr, "c %s\n", err)
		}
	}
	e.Opts.Set("verbose", cfg.verbose)
	e.SetTimeLimit(cfg.timeLimit)

	if cfg.qratFile != "" {
		traceFile, err := os.Create(cfg.qratFile)
		if err != nil {
			return exitUnknown, fmt.Errorf("could not create qrat file: %w", err)
		}
		defer traceFile.Close()
		e.Trace = qrat.New(traceFile, e.VarOut(), e.Opts.Bool("qratmsg"))
	}

	if cfg.verbose > 0 {
		e.Progress = qbf.NewProgressReporter(os.Stderr, time.Second)
		e.Progress.Start()
	}

	t := time.Now()
	e.Run()
	elapsed := time.Since(t)

	if e.Progress != nil {
		e.Progress.Stop()
	}

	if e.Trace != nil {
		if err := e.Trace.Flush(); err != nil {
			return exitUnknown, &qbf.TraceError{Err: err}
		}
	}

	fmt.Printf("c variables:  %d\n", e.NumVars())
	fmt.Printf("c clauses:    %d\n", e.NumLiveClauses())
	fmt.Printf("c iterations: %d\n", e.Stats.FixpointIterations)
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())

	if err := qdimacs.Write(os.Stdout, e); err != nil {
		return exitUnknown, fmt.Errorf("could not write output: %w", err)
	}

	switch {
	case e.HasEmptyClause():
		return exitUNSAT, nil
	case e.NumLiveClauses() == 0 && e.Propositional():
		return exitSAT, nil
	default:
		return exitUnknown, nil
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	code, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(code)
}
