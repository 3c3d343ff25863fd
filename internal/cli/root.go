// Package cli implements the fieldkit command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	_ "time/tzdata" // display zones must resolve on hosts without a zoneinfo database

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fieldkit/internal/paths"
	"github.com/mesh-intelligence/fieldkit/pkg/format"
	"github.com/mesh-intelligence/fieldkit/pkg/pipeline"
	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
	"github.com/mesh-intelligence/fieldkit/pkg/validate"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errInvalidRecord is returned by commands whose input failed validation
// after the results have been printed.
var errInvalidRecord = errors.New("record failed validation")

// exitError carries the process exit code for a command failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir  string
	schemaFile string
	store      string
	jsonMode   bool
	strict     bool
	verbose    bool
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags     rootFlags
	cfg       types.Config
	logger    *slog.Logger
	formatter *format.Formatter
	pipeline  *pipeline.Pipeline
}

// NewRootCmd creates the top-level "fieldkit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fieldkit",
		Short: "Validate, default, rename and format dispatch records",
		Long: "fieldkit runs jobs, activities and triage records through a schema:\n" +
			"it maps store field names to canonical names, fills defaults,\n" +
			"validates every field and renders display values.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.schemaFile, "schema-file", "", "YAML schema file replacing the built-in schemas")
	pf.StringVar(&a.flags.store, "store", "", "external store naming convention (default: sharepoint)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVar(&a.flags.strict, "strict", false, "fail fields the schema does not declare")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSchemaCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newDefaultsCmd(a))
	root.AddCommand(newMapCmd(a))
	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newIngestCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errInvalidRecord) {
		return exitUserError
	}
	fmt.Fprintln(stderr, "fieldkit:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// setup loads the configuration and builds the logger, registry, formatter
// and pipeline used by the subcommands.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.SchemaFile, err = paths.ResolveSchemaFile(a.flags.schemaFile, cfg.SchemaFile, configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve schema file: %w", err))
	}
	a.cfg = cfg

	level := logLevel(cfg.LogLevel)
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	registry := schema.Default()
	if cfg.SchemaFile != "" {
		registry, err = schema.LoadFile(cfg.SchemaFile)
		if err != nil {
			return err
		}
		a.logger.Debug("Loaded schema file",
			slog.String("path", cfg.SchemaFile), slog.Any("entities", registry.Entities()))
	}
	if err := registry.RequireStore(cfg.Store); err != nil {
		a.logger.Warn("Store has no mapping tables, field names pass through unchanged",
			slog.String("store", cfg.Store), slog.Any("error", err))
	}

	a.formatter, err = format.NewInZone(cfg.Timezone)
	if err != nil {
		return err
	}

	a.pipeline = pipeline.New(pipeline.Config{
		Registry:   registry,
		Store:      cfg.Store,
		Validation: a.validationOptions(),
		Formatter:  a.formatter,
		Logger:     a.logger,
	})
	return nil
}

func (a *app) validationOptions() validate.Options {
	return validate.Options{
		Strict:         a.cfg.Strict,
		RecordKeysOnly: !a.cfg.CheckSchemaFields,
	}
}

func (a *app) validator() *validate.Validator {
	return validate.New(a.validationOptions())
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// schemaFor resolves entity against the loaded registry.
func (a *app) schemaFor(entity string) (*types.EntitySchema, error) {
	s, err := a.pipeline.Registry().SchemaFor(entity)
	if err != nil {
		return nil, fmt.Errorf("%w (known: %v)", err, a.pipeline.Registry().Entities())
	}
	return s, nil
}
