package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/bluemonday"
	"github.com/fwojciec/sigedit/edit"
	"github.com/fwojciec/sigedit/fs"
	"github.com/fwojciec/sigedit/goquery"
	"github.com/fwojciec/sigedit/htmltomarkdown"
	"github.com/fwojciec/sigedit/imaging"
	"github.com/fwojciec/sigedit/parse"
	"github.com/fwojciec/sigedit/rod"
	"github.com/fwojciec/sigedit/scan"
	sigslog "github.com/fwojciec/sigedit/slog"
	"github.com/fwojciec/sigedit/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		// Application errors have already been reported to the user.
		if sigedit.ErrorCode(err) == sigedit.EINTERNAL {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides flags and config when set before Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Now is the clock used for export filenames.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sigedit"),
		kong.Description("Detect and edit the fields of HTML email signatures."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sigedit --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmtError(stderr, err)
		return err
	}
	fallback, _ := sigedit.ParseImageFallback(cfg.ImageFallback)

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Parser = sigslog.NewLoggingParser(&parse.Parser{
		Tree:       &goquery.Loader{MaxBytes: cfg.TreeMaxBytes},
		Fallback:   scan.NewLoader(),
		Classifier: sigedit.NewClassifier(),
		Images:     sigedit.ImagePolicy{Fallback: fallback},
	}, deps.Logger)
	deps.Editor = sigslog.NewLoggingEditor(edit.NewEditor(), deps.Logger)
	deps.Images = &imaging.Encoder{MaxWidth: cfg.MaxImageWidth, MaxHeight: cfg.MaxImageHeight}
	deps.Previewer = htmltomarkdown.NewPreviewer(bluemonday.NewSanitizer())
	deps.NewExportWriter = func(dir string) sigedit.ExportWriter { return fs.NewWriter(dir) }
	deps.Concurrency = cfg.ConcurrencyLimit(0)

	var command string
	if fields := strings.Fields(kongCtx.Command()); len(fields) > 0 {
		command = fields[0]
	}

	if needsDB(command, cli) {
		path := m.DBPath
		if path == "" {
			path = cfg.DBPath(cli.DB)
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SIGEDIT_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Templates = sigslog.NewLoggingTemplateService(sqlite.NewTemplateService(m.DB), deps.Logger)
		deps.Signatures = sigslog.NewLoggingSignatureService(sqlite.NewSignatureService(m.DB), deps.Logger)
	}

	if command == "template" && cli.Template.Save.Thumbnail {
		thumbnailer := rod.NewThumbnailer()
		defer thumbnailer.Close()
		deps.Thumbnailer = rod.NewLoggingThumbnailer(thumbnailer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the command reads or writes stored data.
func needsDB(command string, cli *CLI) bool {
	switch command {
	case "template", "signature":
		return true
	case "parse":
		return cli.Parse.Save
	case "edit":
		return cli.Edit.Signature != ""
	}
	return false
}

// newLogger logs operations at Info level with --verbose and only warnings
// otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
