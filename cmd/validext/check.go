package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validext/pkg/catalog"
	"github.com/dmitrymomot/validext/pkg/config"
	"github.com/dmitrymomot/validext/pkg/logger"
	"github.com/dmitrymomot/validext/pkg/metrics"
	"github.com/dmitrymomot/validext/pkg/ruleset"
	"github.com/dmitrymomot/validext/pkg/validator"
)

var (
	errDocumentsInvalid = errors.New("one or more documents are invalid")
	errNoRules          = errors.New("no rule set given: use --rules or VALIDEXT_RULES")
)

type checkFlags struct {
	envFiles    []string
	rules       string
	lang        string
	catalog     string
	allowLike   bool
	concurrency int
	logLevel    string
	logFormat   string
	metrics     bool
}

func newCheckCmd() *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [document...]",
		Short: "Check JSON documents against a rule set",
		Long: `Check validates every document against the rule set and prints the
failures per field. Use "-" to read a document from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.envFiles...)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runCheck(cmd, cfg, f.metrics, args)
		},
	}

	fs := cmd.Flags()
	fs.StringSliceVar(&f.envFiles, "env-file", nil, "load variables from these .env files")
	fs.StringVarP(&f.rules, "rules", "r", "", "rule set file (YAML or JSON)")
	fs.StringVarP(&f.lang, "lang", "l", "", "language of failure messages")
	fs.StringVar(&f.catalog, "catalog", "", "message catalog file (YAML or JSON)")
	fs.BoolVar(&f.allowLike, "allow-like", false, "accept LIKE and NOT LIKE operators")
	fs.IntVarP(&f.concurrency, "concurrency", "c", 0, "documents checked in parallel, 0 for unbounded")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "text or json")
	fs.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics to stderr when done")
	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (f checkFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("rules") {
		cfg.Rules = f.rules
	}
	if fs.Changed("lang") {
		cfg.Lang = f.lang
	}
	if fs.Changed("catalog") {
		cfg.Catalog = f.catalog
	}
	if fs.Changed("allow-like") {
		cfg.AllowLike = f.allowLike
	}
	if fs.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
}

func runCheck(cmd *cobra.Command, cfg config.Config, withMetrics bool, args []string) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if cfg.Rules == "" {
		return errNoRules
	}

	// Validate has already checked both values.
	level, _ := logger.ParseLevel(cfg.LogLevel)
	format, _ := logger.ParseFormat(cfg.LogFormat)
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(errOut),
		logger.WithContextValue(logger.KeyDocument, ruleset.DocumentKey{}),
	)

	opts := []ruleset.Option{ruleset.WithAllowLike(cfg.AllowLike), ruleset.WithLogger(log)}

	var reg *prometheus.Registry
	if withMetrics {
		reg = prometheus.NewRegistry()
		col, err := metrics.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, ruleset.WithMetrics(col))
	}

	rs, err := ruleset.CompileFile(cfg.Rules, opts...)
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	if cfg.Catalog != "" {
		cat, err = catalog.New(ctx, &catalog.FileSource{Path: cfg.Catalog},
			catalog.WithLogger(log),
			catalog.WithMissingTemplatesLogging(true),
		)
		if err != nil {
			return err
		}
	}

	docs, err := readDocuments(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	results, err := rs.ValidateAll(ctx, docs, cfg.Concurrency)
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if !report(out, docs[i].Name, res, cat, cfg.Lang) {
			failed++
		}
		if res != nil && validator.ErrorsOf(res) == nil {
			log.WarnContext(ctx, "document not checked", logger.Document(docs[i].Name), logger.Error(res))
		}
	}
	log.InfoContext(ctx, "check finished",
		slog.Int("documents", len(docs)),
		slog.Int("failed", failed),
	)

	if reg != nil {
		if err := writeMetrics(errOut, reg); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errDocumentsInvalid
	}
	return nil
}

// report prints the outcome of one document and reports whether it passed.
func report(w io.Writer, name string, err error, cat *catalog.Catalog, lang string) bool {
	if err == nil {
		fmt.Fprintf(w, "%s: ok\n", name)
		return true
	}

	verrs := validator.ErrorsOf(err)
	if verrs == nil {
		fmt.Fprintf(w, "%s: error: %v\n", name, err)
		return false
	}
	if cat != nil {
		verrs = cat.LocalizeErrors(lang, verrs)
	}

	fmt.Fprintf(w, "%s: invalid\n", name)
	for _, e := range verrs {
		fmt.Fprintf(w, "  %s: %s (%s)\n", e.Field, e.Message, e.Code)
	}
	return false
}

func readDocuments(stdin io.Reader, args []string) ([]ruleset.Document, error) {
	docs := make([]ruleset.Document, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		docs = append(docs, ruleset.Document{Name: name, Data: data})
	}
	return docs, nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
