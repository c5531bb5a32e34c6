// Command rasterfx applies raster filters to a bitmap image.
//
// Without -filter it lists the registered filters and asks for a name on
// standard input; "test" runs every filter and saves every result. Each
// result is written to <out>/<name>_output.bmp.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/message"

	"github.com/gogpu/rasterfx"
	"github.com/gogpu/rasterfx/filter"
	"github.com/gogpu/rasterfx/registry"
)

// runAllCommand selects every registered filter.
const runAllCommand = "test"

type config struct {
	image   string
	mask    string
	out     string
	filter  string
	band    string
	seed    uint64
	workers int
	zstd    bool
	lang    string
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rasterfx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.StringVar(&cfg.image, "image", "images/test_image.bmp", "source image (BMP, PNG or JPEG, optionally .zst)")
	fs.StringVar(&cfg.mask, "mask", "images/mask.bmp", "mask image; empty disables the mask")
	fs.StringVar(&cfg.out, "out", ".", "output directory")
	fs.StringVar(&cfg.filter, "filter", "", "filter to apply without prompting; \""+runAllCommand+"\" applies all")
	fs.StringVar(&cfg.band, "band", "red", "channel kept by colorBand: red, green or blue")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for replacement colors (0 picks a random seed)")
	fs.IntVar(&cfg.workers, "workers", 0, "parallel workers (0 runs sequentially)")
	fs.BoolVar(&cfg.zstd, "zstd", false, "zstd-compress outputs")
	fs.StringVar(&cfg.lang, "lang", "", "operator language: en or de (default from LANG)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	rasterfx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer rasterfx.SetLogger(nil)

	p, err := newPrinter(cfg.lang)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	a, err := newApp(cfg, p, stdout)
	if err != nil {
		say(p, stdout, msgImageError, err)
		return 1
	}
	defer a.close()

	name := cfg.filter
	if name == "" {
		name, err = a.prompt(stdin)
		if err != nil {
			say(p, stdout, msgNoSelection)
			return 1
		}
	}

	if name == runAllCommand {
		return a.runAll()
	}
	return a.runOne(name)
}

// app holds the loaded images and the configured filters for one run.
type app struct {
	cfg  config
	p    *message.Printer
	out  io.Writer
	reg  *registry.Registry
	pool *rasterfx.WorkerPool
	src  *rasterfx.Raster
	mask *rasterfx.Raster
}

func newApp(cfg config, p *message.Printer, out io.Writer) (*app, error) {
	a := &app{cfg: cfg, p: p, out: out}

	var err error
	a.src, err = rasterfx.Load(cfg.image)
	if err != nil {
		return nil, err
	}
	if cfg.mask != "" {
		a.mask, err = rasterfx.Load(cfg.mask)
		if err != nil {
			return nil, err
		}
	}

	var opts []filter.Option
	if cfg.workers > 0 {
		a.pool = rasterfx.NewWorkerPool(cfg.workers)
		opts = append(opts, filter.WithPool(a.pool))
	}

	var rng *rand.Rand
	if cfg.seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.seed, cfg.seed)) //nolint:gosec // G404: colors need no crypto
	}

	a.reg, err = registry.Builtin(rng, opts...)
	if err == nil {
		err = a.setBand(cfg.band, opts)
	}
	if err != nil {
		a.close()
		return nil, err
	}

	rasterfx.Logger().Debug("loaded",
		"image", cfg.image,
		"width", a.src.Width(),
		"height", a.src.Height(),
		"mask", a.mask != nil,
		"filters", a.reg.Len())
	return a, nil
}

// setBand replaces the builtin colorBand filter when another channel is
// requested.
func (a *app) setBand(name string, opts []filter.Option) error {
	band, err := filter.ParseBand(name)
	if err != nil || band == filter.BandRed {
		return err
	}
	f, err := filter.NewColorBandFilter(band, append([]filter.Option{filter.WithName(registry.ColorBand)}, opts...)...)
	if err != nil {
		return err
	}
	return a.reg.Register(registry.ColorBand, f)
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// prompt lists the filters and reads names from in until one is
// registered or the run-all command is entered.
func (a *app) prompt(in io.Reader) (string, error) {
	say(a.p, a.out, msgAvailable)
	for _, name := range a.reg.Names() {
		fmt.Fprintln(a.out, name)
	}

	sc := bufio.NewScanner(in)
	for {
		say(a.p, a.out, msgPrompt, runAllCommand)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}

		name := strings.TrimSpace(sc.Text())
		if name == runAllCommand || a.reg.IsRegistered(name) {
			return name, nil
		}
		say(a.p, a.out, msgNotFound)
	}
}

// outputPath returns the file a filter's result is saved to.
func (a *app) outputPath(name string) string {
	file := name + "_output" + rasterfx.FormatBMP.Ext()
	if a.cfg.zstd {
		file += rasterfx.CompressedExt
	}
	return filepath.Join(a.cfg.out, file)
}

func (a *app) save(name string, out *rasterfx.Raster) error {
	path := a.outputPath(name)
	if err := rasterfx.Save(out, path); err != nil {
		return err
	}
	rasterfx.Logger().Info("saved", "filter", name, "path", path)
	return nil
}

// runOne applies a single filter and aborts on the first failure.
func (a *app) runOne(name string) int {
	out, err := a.reg.Apply(name, a.src, a.mask)
	if errors.Is(err, registry.ErrUnknownFilter) {
		say(a.p, a.out, msgNotFound)
		return 1
	}
	if err == nil {
		err = a.save(name, out)
	}
	if err != nil {
		say(a.p, a.out, msgImageError, err)
		return 1
	}

	say(a.p, a.out, msgApplied, a.outputPath(name))
	return 0
}

// runAll applies every filter, reporting each outcome and continuing past
// failures. The status is 1 when any filter failed.
func (a *app) runAll() int {
	results := a.reg.RunAll(a.src, a.mask, a.save)

	for _, res := range results {
		if res.OK() {
			say(a.p, a.out, msgAppliedName, res.Name, a.outputPath(res.Name))
		} else {
			say(a.p, a.out, msgFilterError, res.Name, res.Err)
		}
	}

	failed := registry.Failed(results)
	if len(failed) == 0 {
		return 0
	}
	say(a.p, a.out, msgSummary, len(failed), len(results))
	return 1
}

// say prints the translation of key followed by a newline.
func say(p *message.Printer, w io.Writer, key string, args ...any) {
	p.Fprintf(w, key, args...)
	fmt.Fprintln(w)
}
