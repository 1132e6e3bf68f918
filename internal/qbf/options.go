package qbf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// optSpec is one named, bounded, typed option, generalized from bloqqer.c's
// Opt table (`static Opt opts[]`) and the teacher's Options/DefaultOptions
// struct (internal/sat/solver.go) into a single lookup-by-name table so that
// both CLI flags and embedded QDIMACS-comment options
// (`c --name[=value]`, spec.md §6) go through one setter with one set of
// capping/warning rules (spec.md §7).
type optSpec struct {
	name        string
	description string
	def, min, max int
	val         int
}

// Options is the full set of preprocessing toggles/bounds. The engine reads
// every option through the Bool/Int accessors, which look the option up by
// name in the specs map.
type Options struct {
	specs map[string]*optSpec
	order []string
}

func (o *Options) register(name, desc string, def, min, max int) {
	s := &optSpec{name: name, description: desc, def: def, min: min, max: max, val: def}
	o.specs[name] = s
	o.order = append(o.order, name)
}

// NewDefaultOptions returns the option table with documented defaults, the
// same toggles bloqqer.c exposes (verbose/bce/ble/eq/ve/hte/cce/hbce/hble/
// exp/splitlim/the fw*/bw*/blk*/elim* search caps/timelimit/partial
// assignment/qrat message toggle), renamed to Go-flag-friendly lowercase
// names.
func NewDefaultOptions() *Options {
	o := &Options{specs: map[string]*optSpec{}}

	// Technique toggles (0/1); --no-name zeros them from the CLI layer.
	o.register("bce", "blocked clause elimination", 1, 0, 1)
	o.register("ble", "blocked literal elimination", 1, 0, 1)
	o.register("hte", "hidden tautology elimination", 1, 0, 1)
	o.register("cce", "covered literal addition", 1, 0, 1)
	o.register("hbce", "hidden blocked clause elimination", 1, 0, 1)
	o.register("hble", "hidden blocked literal elimination", 1, 0, 1)
	o.register("eq", "equivalence reasoning", 1, 0, 1)
	o.register("ve", "variable elimination by resolution", 1, 0, 1)
	o.register("exp", "universal expansion", 1, 0, 1)
	o.register("split", "long-clause splitting", 1, 0, 1)
	o.register("strict", "strict mini-scoping for variable elimination", 0, 0, 1)
	o.register("quantifyall", "print scopes even when propositional", 0, 0, 1)
	o.register("keep", "keep original variable indices in output", 0, 0, 1)
	o.register("force", "keep going after trivial result", 0, 0, 1)
	o.register("verbose", "verbosity level", 0, 0, 3)
	o.register("qratmsg", "emit optional message strings in QRAT trace", 0, 0, 1)
	o.register("embedded", "honor embedded --options in input comments", 1, 0, 1)
	o.register("ignore", "ignore embedded options entirely", 0, 0, 1)

	// Numeric bounds.
	o.register("splitlim", "max clause size before splitting", 32, 3, 1<<20)
	o.register("axcess", "universal expansion cost slack", 10, 0, 1<<20)
	o.register("excess", "variable elimination resolvent slack", 10, 0, 1<<20)
	o.register("elimoccs", "max occurrences of a variable to attempt VE", 1000, 1, 1<<20)
	o.register("elimsize", "max clause size to attempt VE on", 1000, 2, 1<<20)
	o.register("fwmaxoccs", "forward subsumption occurrence cap", 10000, 0, 1<<20)
	o.register("fwmax1size", "forward subsumption clause-size cap (checked)", 1000, 2, 1<<20)
	o.register("fwmax2size", "forward subsumption clause-size cap (buffer)", 1000, 2, 1<<20)
	o.register("bwmaxoccs", "backward subsumption occurrence cap", 10000, 0, 1<<20)
	o.register("bwmax1size", "backward subsumption clause-size cap", 1000, 2, 1<<20)
	o.register("bwmax2size", "backward subsumption candidate-size cap", 1000, 2, 1<<20)
	o.register("blkmax1occs", "blocked-clause detection occurrence cap (pivot)", 10000, 0, 1<<20)
	o.register("blkmax2occs", "blocked-clause detection occurrence cap (candidate)", 10000, 0, 1<<20)
	o.register("blkmax1size", "blocked-clause detection clause-size cap (pivot)", 1000, 2, 1<<20)
	o.register("blkmax2size", "blocked-clause detection clause-size cap (candidate)", 1000, 2, 1<<20)
	o.register("htesize", "hidden/covered literal closure size cap", 1000, 2, 1<<20)
	o.register("hteoccs", "hidden/covered literal closure occurrence cap", 10000, 0, 1<<20)
	o.register("htesteps", "hidden/covered literal closure step cap", 1 << 20, 0, 1 << 30)
	o.register("timelimit", "wall-clock budget in seconds, 0 = unbounded", 0, 0, 1<<30)
	o.register("partial", "partial-assignment mode: freeze the outermost scope", 0, 0, 1)

	return o
}

func (o *Options) Int(name string) int {
	s, ok := o.specs[name]
	if !ok {
		return 0
	}
	return s.val
}

func (o *Options) Bool(name string) bool {
	return o.Int(name) != 0
}

// Set assigns val to the named option, capping it into [min, max] and
// returning an *OptionError describing any correction or unknown-name
// warning (spec.md §7: never fatal).
func (o *Options) Set(name string, val int) error {
	s, ok := o.specs[name]
	if !ok {
		return &OptionError{Name: name, Msg: "unknown option, ignored"}
	}
	capped := val
	var msg string
	if capped < s.min {
		capped = s.min
		msg = fmt.Sprintf("value %d below minimum %d, capped", val, s.min)
	} else if capped > s.max {
		capped = s.max
		msg = fmt.Sprintf("value %d above maximum %d, capped", val, s.max)
	}
	s.val = capped
	if msg != "" {
		return &OptionError{Name: name, Msg: msg}
	}
	return nil
}

// SetBool is a convenience for toggles.
func (o *Options) SetBool(name string, b bool) error {
	if b {
		return o.Set(name, 1)
	}
	return o.Set(name, 0)
}

// ParseSetting parses one "name" / "name=value" / "no-name" setting (the
// shape of both CLI flags after `--` and embedded input-comment options,
// spec.md §6/§9) and applies it.
func (o *Options) ParseSetting(arg string) error {
	if strings.HasPrefix(arg, "no-") {
		return o.SetBool(arg[len("no-"):], false)
	}
	if i := strings.IndexByte(arg, '='); i >= 0 {
		name, raw := arg[:i], arg[i+1:]
		val, err := strconv.Atoi(raw)
		if err != nil {
			return &OptionError{Name: name, Msg: fmt.Sprintf("invalid value %q, ignored", raw)}
		}
		return o.Set(name, val)
	}
	return o.SetBool(arg, true)
}

// ParseEmbedded scans a QDIMACS comment line's tokens for `--name[=value]`
// settings and applies each (spec.md §6, §9 "re-entrant parsing / embedded
// options"). It is a no-op once the "ignore" option itself has been set.
func (o *Options) ParseEmbedded(line string) []error {
	if o.Bool("ignore") || !o.Bool("embedded") {
		return nil
	}
	var errs []error
	for _, tok := range strings.Fields(line) {
		if !strings.HasPrefix(tok, "--") {
			continue
		}
		if err := o.ParseSetting(tok[2:]); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Names returns every registered option name in alphabetical order, used by
// the CLI's --help / --defaults / --range listings.
func (o *Options) Names() []string {
	names := append([]string(nil), o.order...)
	sort.Strings(names)
	return names
}

func (o *Options) Describe(name string) (desc string, def, min, max int, ok bool) {
	s, found := o.specs[name]
	if !found {
		return "", 0, 0, 0, false
	}
	return s.description, s.def, s.min, s.max, true
}
