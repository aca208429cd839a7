// Package maincmd is the CLI glue for the willow binary: flag parsing
// and command dispatch via github.com/mna/mainer, in the same shape
// github.com/mna/nenuphar/internal/maincmd uses (a struct-tagged Cmd,
// SetArgs/SetFlags/Validate, a reflection-built command table). The
// command set is narrowed to what the language spec's CLI contract
// (§6) and its debug tooling call for: running a program, a REPL, and
// three pipeline-stage dumps.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "willow"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<path>]
       %[1]s <tokenize|parse|resolve> <path>...
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<path>]
       %[1]s <tokenize|parse|resolve> <path>...
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the willow scripting language.

With no path, starts an interactive REPL. With one path, reads and
runs that file once.

Debug subcommands print one pipeline stage instead of running the
program:
       tokenize <path>...        Print the scanner's token stream.
       parse <path>...           Print the parsed AST.
       resolve <path>...         Print the AST after resolving hop
                                 counts for every lexically-scoped
                                 variable use.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --with-lines              Prefix each printed AST node with its
                                 source line (parse/resolve only).
`, binName)
)

// errHadDiagnostics signals that a command ran to completion but the
// pipeline recorded at least one syntax, static or runtime diagnostic.
// The CLI maps this to exit code 65 (§6), distinct from a genuine
// usage or I/O failure (64).
var errHadDiagnostics = errors.New("program had at least one diagnostic")

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help      bool `flag:"h,help"`
	Version   bool `flag:"v,version"`
	WithLines bool `flag:"with-lines"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
	// cmdArgs is the slice actually passed to cmdFn: args[1:] when a
	// named subcommand was recognized, args unmodified for plain
	// run/REPL dispatch.
	cmdArgs []string
}

func (c *Cmd) SetArgs(args []string)         { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	commands := buildCmds(c)

	if len(c.args) == 0 {
		c.cmdFn = commands["repl"]
		c.cmdArgs = nil
		return nil
	}

	if fn, ok := commands[c.args[0]]; ok {
		if len(c.args[1:]) == 0 {
			return fmt.Errorf("%s: at least one file must be provided", c.args[0])
		}
		c.cmdFn = fn
		c.cmdArgs = c.args[1:]
		return nil
	}

	// no recognized subcommand: the spec's own CLI contract applies —
	// exactly one path runs that file, more than one is a usage error.
	if len(c.args) > 1 {
		return fmt.Errorf("more than one path given")
	}
	c.cmdFn = commands["run"]
	c.cmdArgs = c.args
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(64)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.ExitCode(0)
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.ExitCode(0)
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.cmdArgs); err != nil {
		if errors.Is(err, errHadDiagnostics) {
			return mainer.ExitCode(65)
		}
		return mainer.ExitCode(64)
	}
	return mainer.ExitCode(0)
}

// valid commands are methods taking (context.Context, mainer.Stdio,
// []string) and returning an error, discovered by reflection exactly
// as the teacher's buildCmds does.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
