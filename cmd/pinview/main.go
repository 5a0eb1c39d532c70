package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pthm/pinview"
	"github.com/pthm/pinview/lib/generator"
	"github.com/pthm/pinview/lib/page"
	"github.com/pthm/pinview/widgets"
)

const version = "0.1.0"

// keyEnv holds the state encoding key for the state command.
const keyEnv = "PINVIEW_KEY"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "render":
		return runRender(args, out)
	case "tree":
		return runTree(args, out)
	case "state":
		return runState(args, out)
	case "generate":
		return runGenerate(args, out)
	case "clean":
		return runClean(args, out)
	case "version":
		fmt.Fprintf(out, "pinview version %s\n", version)
		return nil
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `pinview - Vue template builder

Usage:
  pinview <command> [arguments]

Commands:
  render <page.yaml>    Print the template of a page
  tree <page.yaml>      Print the builder tree of a page
  state <page.yaml>     Print the property and config state of a page
  generate              Generate widget code from a catalog
  clean                 Remove generated widget files (*_gen.go)
  version               Print version
  help                  Show this help

Options for state:
  --json                Print plain JSON instead of the encoded state
  --sensitive           Encrypt instead of sign (key from $PINVIEW_KEY)

Options for generate and clean:
  --catalog <file>      Widget catalog (default: embedded catalog)
  --dir <dir>           Output directory (default: .)
  --package <name>      Package of generated files (default: widgets)
  --dry-run             Show what would be generated without writing files

Examples:
  pinview render pages/settings.yaml
  pinview state --json pages/settings.yaml
  pinview generate --dir widgets`)
}

// flags holds the parsed command line options.
type flags struct {
	json      bool
	sensitive bool
	dryRun    bool
	catalog   string
	dir       string
	pkg       string
	args      []string
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{dir: "."}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%w: %s needs a value", errUsage, arg)
			}
			i++
			return args[i], nil
		}
		var err error
		switch arg {
		case "--json":
			f.json = true
		case "--sensitive":
			f.sensitive = true
		case "--dry-run":
			f.dryRun = true
		case "--catalog":
			f.catalog, err = value()
		case "--dir":
			f.dir, err = value()
		case "--package":
			f.pkg, err = value()
		default:
			if strings.HasPrefix(arg, "--") {
				return nil, fmt.Errorf("%w: unknown option %s", errUsage, arg)
			}
			f.args = append(f.args, arg)
		}
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

// loadPage builds the single page named in args.
func loadPage(f *flags) (*pinview.Session, *pinview.Builder, error) {
	if len(f.args) != 1 {
		return nil, nil, fmt.Errorf("%w: expected one page file", errUsage)
	}
	s := pinview.NewSession()
	b, err := page.NewLoader(nil).Load(s, f.args[0])
	if err != nil {
		return nil, nil, err
	}
	return s, b, nil
}

func runRender(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.args) != 1 {
		return fmt.Errorf("%w: expected one page file", errUsage)
	}
	markup, err := page.NewLoader(nil).Render(pinview.NewSession(), f.args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, markup)
	return err
}

func runTree(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	_, b, err := loadPage(f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, b.Tree())
	return err
}

func runState(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	s, b, err := loadPage(f)
	if err != nil {
		return err
	}
	b.Build()

	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s.State())
	}

	key := os.Getenv(keyEnv)
	if key == "" {
		return fmt.Errorf("$%s is not set", keyEnv)
	}
	enc, err := pinview.NewEncoder([]byte(key))
	if err != nil {
		return err
	}
	encoded, err := pinview.EncodeState(enc, s, f.sensitive)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, encoded)
	return err
}

func newGenerator(f *flags, out io.Writer) (*generator.Generator, error) {
	if len(f.args) > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, f.args[0])
	}
	return generator.New(generator.Options{
		DryRun:  f.dryRun,
		Package: f.pkg,
		Log:     out,
	}), nil
}

func runGenerate(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	gen, err := newGenerator(f, out)
	if err != nil {
		return err
	}

	catalog := widgets.DefaultCatalog()
	if f.catalog != "" {
		if catalog, err = widgets.LoadCatalog(f.catalog); err != nil {
			return err
		}
	}
	return gen.Generate(catalog, f.dir)
}

func runClean(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	gen, err := newGenerator(f, out)
	if err != nil {
		return err
	}
	return gen.Clean(f.dir)
}
