package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/benetherington/anvil-runtime/internal/ctxlog"
	"github.com/benetherington/anvil-runtime/internal/prompt"
	"github.com/benetherington/anvil-runtime/pkg/plotly/graphobjs"
	"github.com/benetherington/anvil-runtime/pkg/schema"
	"github.com/benetherington/anvil-runtime/pkg/serializable"
	"github.com/benetherington/anvil-runtime/pkg/styles"
)

type app struct {
	registry *serializable.Registry
	schemas  *schema.Store
}

func newApp(logger *slog.Logger) (*app, error) {
	reg, err := graphobjs.NewRegistry(serializable.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	schemas, err := schema.Embedded()
	if err != nil {
		return nil, err
	}
	logger.Debug("Catalog loaded.", "types", reg.Len(), "schemas", len(schemas.Names()))
	return &app{registry: reg, schemas: schemas}, nil
}

func (a *app) list(out io.Writer) error {
	for _, key := range a.registry.Keys() {
		if _, err := fmt.Fprintln(out, key.Qualified()); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) lookup(qualified string) (serializable.Descriptor, schema.TypeSchema, error) {
	desc, err := a.registry.LookupQualified(qualified)
	if err != nil {
		return serializable.Descriptor{}, schema.TypeSchema{}, err
	}
	ts, ok := a.schemas.Type(desc.Key().Qualified())
	if !ok {
		return serializable.Descriptor{}, schema.TypeSchema{}, fmt.Errorf("cli: no attribute schema for %s", desc.Key())
	}
	return desc, ts, nil
}

func (a *app) describe(args []string, out io.Writer) error {
	if len(args) != 1 {
		return usageError("describe requires exactly one type name")
	}
	desc, ts, err := a.lookup(args[0])
	if err != nil {
		return err
	}
	return describe(out, desc, ts)
}

func (a *app) newValue(ctx context.Context, args []string, env Env) error {
	flagSet := flag.NewFlagSet("new", flag.ContinueOnError)
	flagSet.SetOutput(env.Stderr)
	themeFile := flagSet.String("theme-file", "", "Theme manifest (YAML or JSON) supplying default tokens.")
	themeName := flagSet.String("theme", "", "Theme name to select (defaults to the manifest in -theme-file).")
	themeVersion := flagSet.String("theme-version", "", "Theme version to select (defaults to the latest).")
	variant := flagSet.String("variant", "", "Theme variant to select.")
	noPrompt := flagSet.Bool("no-prompt", false, "Use defaults without prompting.")

	positional, err := parseInterleaved(flagSet, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return usageError("new requires exactly one type name")
	}
	if strings.TrimSpace(*themeFile) == "" && (*themeName != "" || *themeVersion != "" || *variant != "") {
		return usageError("-theme, -theme-version and -variant require -theme-file")
	}

	desc, ts, err := a.lookup(positional[0])
	if err != nil {
		return err
	}

	resolver, err := newResolver(*themeFile, a.schemas)
	if err != nil {
		return err
	}
	var queryOpts []theme.QueryOption
	if *themeVersion != "" {
		queryOpts = append(queryOpts, theme.WithVersion(*themeVersion))
	}
	defaults, err := resolver.Defaults(ctx, desc.Key(), *themeName, *variant, queryOpts...)
	if err != nil {
		return err
	}

	attrs := defaults
	if !*noPrompt {
		driver := env.Driver
		if driver == nil {
			driver = prompt.NewSurveyDriver()
		}
		attrs, err = prompt.Attributes(ctx, driver, ts, defaults)
		if err != nil {
			return err
		}
	}

	attrs = ts.Normalize(attrs)
	if err := ts.Validate(attrs); err != nil {
		return err
	}

	value := desc.New()
	attributer, ok := value.(serializable.Attributer)
	if !ok {
		return fmt.Errorf("%w: %s", serializable.ErrUnsupported, desc.Key())
	}
	attributer.Attributes().Reset(attrs)

	data, err := a.registry.Marshal(value)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Built value.", "type", desc.Key().Qualified(), "attributes", len(attrs))
	return writeIndented(env.Stdout, data)
}

func (a *app) decode(args []string, env Env) error {
	flagSet := flag.NewFlagSet("decode", flag.ContinueOnError)
	flagSet.SetOutput(env.Stderr)
	file := flagSet.String("file", "", "Read the envelope from a file instead of stdin.")
	if err := flagSet.Parse(args); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	var (
		data []byte
		err  error
	)
	if strings.TrimSpace(*file) != "" {
		data, err = os.ReadFile(*file)
	} else if env.Stdin != nil {
		data, err = io.ReadAll(env.Stdin)
	}
	if err != nil {
		return fmt.Errorf("cli: read envelope: %w", err)
	}

	value, err := a.registry.Unmarshal(data)
	if err != nil {
		return err
	}
	key := serializable.KeyOf(value)
	ts, ok := a.schemas.Type(key.Qualified())
	if !ok {
		return fmt.Errorf("cli: no attribute schema for %s", key)
	}

	attrs := value.(serializable.Attributer).Attributes()
	normalized := ts.Normalize(attrs.Map())
	if err := ts.Validate(normalized); err != nil {
		return err
	}
	attrs.Reset(normalized)

	out, err := a.registry.Marshal(value)
	if err != nil {
		return err
	}
	return writeIndented(env.Stdout, out)
}

func newResolver(themeFile string, schemas *schema.Store) (*styles.Resolver, error) {
	if strings.TrimSpace(themeFile) == "" {
		return styles.NewResolver(nil, schemas), nil
	}
	abs, err := filepath.Abs(themeFile)
	if err != nil {
		return nil, fmt.Errorf("cli: theme path: %w", err)
	}
	selector, err := styles.LoadSelector(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return nil, err
	}
	return styles.NewResolver(selector, schemas), nil
}

// parseInterleaved parses flags that may appear before, between or after
// positional arguments and returns the positional ones.
func parseInterleaved(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		args = flagSet.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func writeIndented(out io.Writer, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("cli: format output: %w", err)
	}
	buf.WriteByte('\n')
	_, err := out.Write(buf.Bytes())
	return err
}
