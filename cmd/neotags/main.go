/*
Package main is the neotags filter binary. It is driven by an editor
integration: tag source and filter settings come from positional arguments,
the buffer contents from stdin, and kind/name line pairs go to stdout.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/woozymasta/neotags"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type Options struct {
	// betteralign:ignore

	// Diagnostics
	OptionsDebug OptionsDebug `group:"Diagnostics"`
	// Output shaping and limits
	OptionsOutput OptionsOutput `group:"Output"`
	// Positional arguments supplied by the editor
	Args Args `positional-args:"yes" required:"yes"`
}

type OptionsDebug struct {
	Debug   bool `short:"d" long:"debug"   env:"NEOTAGS_DEBUG" description:"Log every record decision to stderr"`
	Version bool `short:"V" long:"version"                     description:"Print version and exit"`
}

type OptionsOutput struct {
	Limit     int   `short:"n" long:"limit"      description:"Max number of output tags (<=0 = unlimited)" default:"0"`
	MaxBuffer int64 `long:"max-buffer"           description:"Largest accepted buffer length in bytes (<=0 = default)" default:"268435456"`
}

type Args struct {
	TagSource string `positional-arg-name:"tag-source"  description:"Tag file path or glob"`
	Lang      string `positional-arg-name:"language"    description:"Requested language"`
	Order     string `positional-arg-name:"order"       description:"Accepted kind characters"`
	BufLen    string `positional-arg-name:"buffer-len"  description:"Buffer length in bytes"`
	SkipCount string `positional-arg-name:"skip-count"  description:"Number of skip-list entries"`
	EqvCount  string `positional-arg-name:"equiv-count" description:"Number of equivalence-table entries"`
	Skip      string `positional-arg-name:"skip"        description:"Colon-delimited skip list"`
	Equiv     string `positional-arg-name:"equiv"       description:"Colon-delimited from:to language pairs"`
}

// env carries process context explicitly instead of package globals.
type env struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	prog       string
	args       []string
}

func main() {
	os.Exit(run(env{
		prog:       filepath.Base(os.Args[0]),
		args:       os.Args[1:],
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}))
}

func run(e env) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = e.prog
	parser.LongDescription = `neotags filters a ctags file down to the tags present in an editor buffer.
It is meant to be driven by an editor plugin, not run by hand.`

	_, perr := parser.ParseArgs(e.args)

	var flagErr *flags.Error
	if errors.As(perr, &flagErr) && flagErr.Type == flags.ErrHelp {
		parser.WriteHelp(e.stdout)
		return neotags.ExitOK
	}

	if opt.OptionsDebug.Version {
		fmt.Fprintln(e.stdout, neotags.CanonicalVersion(neotags.Version))
		return neotags.ExitOK
	}

	if e.isTerminal != nil && e.isTerminal() {
		return fail(e, &neotags.Error{Kind: neotags.KindTerminal, Err: errors.New("this program can't be run manually")})
	}

	if perr != nil {
		return fail(e, usageError(perr))
	}

	log := newLogger(e.stderr, opt.OptionsDebug.Debug)
	defer func() { _ = log.Sync() }()

	if err := filter(e, opt, log); err != nil {
		return fail(e, err)
	}

	return neotags.ExitOK
}

func filter(e env, opt Options, log *zap.Logger) error {
	a := opt.Args

	nchars, err := neotags.ParseCount(a.BufLen)
	if err != nil {
		return err
	}

	nskip, err := neotags.ParseCount(a.SkipCount)
	if err != nil {
		return err
	}

	neqv, err := neotags.ParseCount(a.EqvCount)
	if err != nil {
		return err
	}

	skip := neotags.SplitList(a.Skip)
	flat := neotags.SplitList(a.Equiv)
	if int64(len(skip)) != nskip || int64(len(flat)) != neqv {
		log.Debug("list length differs from declared count",
			zap.Int64("skip_count", nskip), zap.Int("skip_len", len(skip)),
			zap.Int64("equiv_count", neqv), zap.Int("equiv_len", len(flat)),
		)
	}

	f, err := neotags.New(neotags.Options{
		Logger: log,
		Lang:   a.Lang,
		Order:  neotags.OrderSpec(a.Order),
		Skip:   skip,
		Equiv:  neotags.ParseEquivalence(flat),
	})
	if err != nil {
		return err
	}

	records, err := neotags.ReadRecords(a.TagSource)
	if err != nil {
		return err
	}

	buffer, err := neotags.ReadBuffer(bufio.NewReader(e.stdin), nchars, opt.OptionsOutput.MaxBuffer)
	if err != nil {
		return err
	}

	set, st := f.Scan(records)
	n, err := neotags.WriteTags(e.stdout, set.Present(buffer, opt.OptionsOutput.Limit))
	if err != nil {
		return &neotags.Error{Kind: neotags.KindIO, Op: "write output", Err: err}
	}

	log.Debug("done",
		zap.Int("records", st.Total()),
		zap.Int("accepted", set.Len()),
		zap.Int("emitted", n),
	)

	return nil
}

func usageError(err error) error {
	return &neotags.Error{Kind: neotags.KindUsage, Err: fmt.Errorf("insufficient input parameters: %w", err)}
}

// fail reports err on stderr prefixed with the program name and returns its exit code.
func fail(e env, err error) int {
	fmt.Fprintf(e.stderr, "%s: %v\n", e.prog, err)
	return neotags.ExitCode(err)
}

// newLogger returns a console logger on w in debug mode, otherwise a no-op logger.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core)
}
