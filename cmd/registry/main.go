// Command registry inspects the provider and model tables from a terminal.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nulzo/prism-registry/internal/cli"
	"github.com/nulzo/prism-registry/internal/config"
	"github.com/nulzo/prism-registry/internal/i18n"
	"github.com/nulzo/prism-registry/internal/registry"
	"github.com/nulzo/prism-registry/internal/settings"
	"github.com/nulzo/prism-registry/pkg/api"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `Usage: registry [flags] <command> [args]

Commands:
  providers                        list providers in declaration order
  models [provider]                list the model table
  schema <provider>                print the settings JSON Schema
  validate <provider> <json>       validate a settings object (merged over initial settings)
  caps <model> <role> [media-type] resolve accepted input types
  sniff <model> <role> <file>      detect a file's media type and check it

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("registry", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	locale := fs.StringP("locale", "l", "", "override the configured locale ("+strings.Join(i18n.Supported(), ", ")+")")
	configDir := fs.StringP("config", "c", "", "directory containing config.yaml")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *noColor {
		cli.SetEnabled(false)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	var paths []string
	if *configDir != "" {
		paths = append(paths, *configDir)
	}
	cfg, err := config.LoadConfig(paths...)
	if err != nil {
		return fail(stderr, err)
	}
	if *locale != "" {
		cfg.Registry.Locale = strings.ToLower(*locale)
	}

	loc, err := i18n.New(cfg.Registry.Locale)
	if err != nil {
		return fail(stderr, err)
	}
	reg, err := registry.New(loc, registry.FromConfig(cfg.Registry, zap.NewNop())...)
	if err != nil {
		return fail(stderr, err)
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "providers":
		return listProviders(reg, stdout)
	case "models":
		return listModels(reg, rest, stdout, stderr)
	case "schema":
		if len(rest) != 1 {
			return badArgs(stderr, "schema <provider>")
		}
		s, err := reg.SettingsSchema(rest[0])
		if err != nil {
			return fail(stderr, err)
		}
		cli.PrettyPrint(stdout, s)
		return 0
	case "validate":
		if len(rest) != 2 {
			return badArgs(stderr, "validate <provider> <json>")
		}
		return validate(reg, rest[0], rest[1], stdout, stderr)
	case "caps":
		if len(rest) < 2 || len(rest) > 3 {
			return badArgs(stderr, "caps <model> <role> [media-type]")
		}
		return capabilities(reg, rest, stdout, stderr)
	case "sniff":
		if len(rest) != 3 {
			return badArgs(stderr, "sniff <model> <role> <file>")
		}
		return sniff(reg, rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "%s unknown command %q\n\n", cli.CrossMark(), cmd)
		fs.Usage()
		return 2
	}
}

func listProviders(reg *registry.Registry, w io.Writer) int {
	for _, d := range reg.ListProviders() {
		auth := cli.Style("no auth", cli.DimCode)
		if d.RequiresAuth() {
			auth = cli.Style("api key", cli.Yellow)
		}
		models, _ := reg.ProviderModels(d.ID)
		fmt.Fprintf(w, "%-12s %-20s %-8s %d models\n", cli.Style(d.ID, cli.Bold), d.Label, auth, len(models))
	}
	return 0
}

func listModels(reg *registry.Registry, args []string, stdout, stderr io.Writer) int {
	models := reg.Models()
	if len(args) == 1 {
		var err error
		if models, err = reg.ProviderModels(args[0]); err != nil {
			return fail(stderr, err)
		}
	}
	for _, m := range models {
		fmt.Fprintf(stdout, "%-44s %-10s %s\n", m.Name, m.Provider, cli.Style(m.Template, cli.Cyan))
	}
	return 0
}

func validate(reg *registry.Registry, id, raw string, stdout, stderr io.Writer) int {
	var values settings.Values
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return fail(stderr, fmt.Errorf("settings must be a JSON object: %w", err))
	}

	v, err := reg.PrepareSettings(id, values)
	var se *api.SchemaError
	if errors.As(err, &se) {
		fmt.Fprintf(stderr, "%s %s settings are invalid\n", cli.CrossMark(), id)
		for _, viol := range se.Violations {
			fmt.Fprintf(stderr, "  %-16s %-8s %s\n", viol.Field, viol.Kind, viol.Message)
		}
		return 1
	}
	if err != nil {
		return fail(stderr, err)
	}

	if _, err := reg.BuildClient(id, v); err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "%s %s settings are valid\n", cli.CheckMark(), id)
	cli.PrettyPrint(stdout, v.Redacted())
	return 0
}

func capabilities(reg *registry.Registry, args []string, stdout, stderr io.Writer) int {
	role, err := api.ParseRole(args[1])
	if err != nil {
		return fail(stderr, err)
	}

	model := args[0]
	if _, err := reg.Model(model); err != nil {
		fmt.Fprintf(stderr, "%s %s is not in the model table, using the default template\n", cli.WarningSign(), model)
	}

	if len(args) == 2 {
		cli.PrettyPrint(stdout, reg.ResolveCapabilities(model, role))
		return 0
	}

	return verdict(stdout, model, role, args[2], reg.IsInputAllowed(model, role, args[2]))
}

func sniff(reg *registry.Registry, args []string, stdout, stderr io.Writer) int {
	role, err := api.ParseRole(args[1])
	if err != nil {
		return fail(stderr, err)
	}
	data, err := os.ReadFile(args[2])
	if err != nil {
		return fail(stderr, err)
	}

	mt, ok := reg.IsContentAllowed(args[0], role, data)
	return verdict(stdout, args[0], role, mt, ok)
}

func verdict(w io.Writer, model string, role api.Role, mediaType string, ok bool) int {
	if ok {
		fmt.Fprintf(w, "%s %s accepts %s from %s\n", cli.CheckMark(), model, mediaType, role)
		return 0
	}
	fmt.Fprintf(w, "%s %s does not accept %s from %s\n", cli.CrossMark(), model, mediaType, role)
	return 1
}

func badArgs(w io.Writer, want string) int {
	fmt.Fprintf(w, "%s usage: registry %s\n", cli.CrossMark(), want)
	return 2
}

func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "%s %v\n", cli.CrossMark(), err)
	return 1
}
