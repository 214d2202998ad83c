package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/plugin/output"
	"github.com/telugudelicacies/palettegen/internal/plugin/output/template"
)

type templatesOptions struct {
	plugins  []string
	force    bool
	location string
}

// newTemplatesCmd represents the templates command
func newTemplatesCmd(global *globalOptions, registry *output.Registry) *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Manage output plugin templates including listing and dumping embedded templates.

Templates can be customised by extracting them to the templates directory
($XDG_CONFIG_HOME/palettegen/templates/{plugin-name}/ by default) and editing
them. Custom templates are used instead of embedded ones.

Examples:
  palettegen templates list
  palettegen templates dump -o css,tailwind
  palettegen templates dump -o css --force
  palettegen templates dump -l ./templates`,
	}

	cmd.PersistentFlags().StringSliceVarP(&opts.plugins, "output-plugins", "o", []string{}, "comma-separated list of output plugins (default: all)")
	cmd.PersistentFlags().StringVarP(&opts.location, "location", "l", "", "templates directory (default: templates_dir from config)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available plugin templates",
		Long: `List all available templates from output plugins.

Templates with an active custom override are marked with an asterisk (*).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesList(cmd, global, opts, registry)
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump embedded templates to files",
		Long: `Extract embedded plugin templates into the templates directory so they can
be customised. Existing custom templates are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesDump(cmd, global, opts, registry)
		},
	}
	dumpCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing custom templates")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}

// templateLoaders returns a loader per selected plugin that ships templates,
// in plugin name order.
func templateLoaders(cmd *cobra.Command, global *globalOptions, opts *templatesOptions, registry *output.Registry) ([]*template.Loader, error) {
	base, err := templatesBase(cmd, global, opts)
	if err != nil {
		return nil, err
	}

	names := opts.plugins
	if len(names) == 0 {
		names = []string{output.SelectAll}
	}
	plugins, err := registry.Select(names)
	if err != nil {
		return nil, err
	}

	var loaders []*template.Loader
	for _, plugin := range plugins {
		provider, ok := plugin.(output.TemplateProvider)
		if !ok {
			continue
		}
		loaders = append(loaders, template.New(plugin.Name(), provider.Templates(), base))
	}

	if len(loaders) == 0 {
		return nil, errors.New("no selected plugin provides templates")
	}
	return loaders, nil
}

// templatesBase resolves the templates directory from --location or config.
func templatesBase(cmd *cobra.Command, global *globalOptions, opts *templatesOptions) (string, error) {
	base := opts.location
	if base == "" {
		cfg, err := global.loadConfig(cmd.Flags())
		if err != nil {
			return "", err
		}
		base = cfg.TemplatesDir
	}

	if strings.HasPrefix(base, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, base[2:])
	}
	return base, nil
}

func runTemplatesList(cmd *cobra.Command, global *globalOptions, opts *templatesOptions, registry *output.Registry) error {
	loaders, err := templateLoaders(cmd, global, opts, registry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hasCustom := false

	for _, loader := range loaders {
		templates, err := loader.ListEmbeddedTemplates()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s (%s)\n", filepath.Base(loader.CustomDir()), loader.CustomDir())
		for _, tmpl := range templates {
			marker := ""
			if loader.HasCustomTemplate(tmpl) {
				marker = "*"
				hasCustom = true
			}
			fmt.Fprintf(out, "  %s%s\n", tmpl, marker)
		}
	}

	if hasCustom {
		fmt.Fprintln(out, "\nTemplates with active overrides are shown with an asterisk (*).")
	}
	return nil
}

func runTemplatesDump(cmd *cobra.Command, global *globalOptions, opts *templatesOptions, registry *output.Registry) error {
	loaders, err := templateLoaders(cmd, global, opts, registry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := 0

	for _, loader := range loaders {
		dumped, err := loader.DumpAllTemplates(opts.force)
		for _, path := range dumped {
			fmt.Fprintf(out, "wrote %s\n", path)
			total++
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, template.ErrTemplateExists) {
			return err
		}
		printSkipped(out, err)
	}

	if total == 0 {
		fmt.Fprintln(out, "No templates were dumped. Use --force to overwrite existing templates.")
		return nil
	}
	fmt.Fprintf(out, "Dumped %d template(s)\n", total)
	return nil
}

// printSkipped lists each template skipped by a joined dump error.
func printSkipped(w io.Writer, err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		fmt.Fprintf(w, "skipped %v\n", e)
	}
}
