// Copyright © 2026 The mpvedit authors

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mpvex/mpvedit/catalog"
	"github.com/mpvex/mpvedit/complete"
)

// Longer names overflow the name column instead of widening it.
const maxNameColumn = 32

type catalogEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Signature   string `json:"signature,omitempty" yaml:"signature,omitempty"`
}

type catalogGroup struct {
	Category catalog.Category `json:"category" yaml:"category"`
	Entries  []catalogEntry   `json:"entries" yaml:"entries"`
}

type catalogListing struct {
	Kind       complete.FileKind `json:"kind" yaml:"kind"`
	Groups     []catalogGroup    `json:"groups" yaml:"groups"`
	Properties []string          `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// CatalogCommand creates the "catalog" cobra command.
func CatalogCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		kind       string
		format     string
		width      int
		check      bool
		properties bool
	)

	cmd := &cobra.Command{
		Use:   "catalog [flags] [filter]",
		Short: "List the option catalog or the Lua API catalog",
		Long: `List catalog entries by category.

With a filter, only entries whose name or description contains it (ignoring
case) are listed, exactly as completion would match them. Descriptions are
wrapped to --width columns.

--kind conf lists config options (the default); --kind lua lists the Lua
API, and --properties adds the observable property names.

--check validates both catalogs (no empty or duplicate names) and exits
non-zero on failure.

Examples:
  mpvedit catalog cache
  mpvedit catalog --kind lua --properties osd
  mpvedit catalog --format yaml hdr
  mpvedit catalog --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := cfg.resolveDispatcher()
			out := cmd.OutOrStdout()
			if check {
				return checkCatalogs(out, d)
			}

			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			listing := buildListing(d, complete.ParseFileKind(kind), filter, properties)

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(listing); err != nil {
					return err
				}
				return enc.Close()
			case "text", "":
				return writeListing(out, listing, width)
			default:
				return fmt.Errorf("unknown format %q: want text, json or yaml", format)
			}
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "conf", `Catalog: "conf" or "lua"`)
	cmd.Flags().StringVarP(&format, "format", "f", "text", `Output format: "text", "json" or "yaml"`)
	cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap descriptions to this many columns")
	cmd.Flags().BoolVar(&check, "check", false, "Validate the catalogs and exit")
	cmd.Flags().BoolVarP(&properties, "properties", "p", false, "Also list observable properties (lua)")

	return cmd
}

func checkCatalogs(w io.Writer, d *complete.Dispatcher) error {
	optErr := d.Options().Validate()
	apiErr := d.API().Validate()
	report := func(what string, n int, err error) {
		if err == nil {
			fmt.Fprintf(w, "%s: %d entries ok\n", what, n) //nolint:errcheck // best-effort output
			return
		}
		for _, e := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "%s: %s\n", what, e) //nolint:errcheck // best-effort output
		}
	}
	report("options", d.Options().Len(), optErr)
	report("api", d.API().Len(), apiErr)
	report("properties", len(d.API().Properties()), nil)
	if err := errors.Join(optErr, apiErr); err != nil {
		return errProblems
	}
	return nil
}

func buildListing(d *complete.Dispatcher, kind complete.FileKind, filter string, properties bool) catalogListing {
	listing := catalogListing{Kind: kind}
	if kind == complete.KindConfig {
		for _, g := range d.Options().Groups() {
			entries := filterEntries(filter, g.Entries, func(o catalog.ConfigOption) catalogEntry {
				return catalogEntry{Name: o.Key, Description: o.Description, Default: o.Default}
			})
			if len(entries) > 0 {
				listing.Groups = append(listing.Groups, catalogGroup{Category: g.Category, Entries: entries})
			}
		}
		return listing
	}
	for _, g := range d.API().Groups() {
		entries := filterEntries(filter, g.Entries, func(e catalog.APIEntry) catalogEntry {
			return catalogEntry{Name: e.Name, Description: e.Description, Signature: e.Signature}
		})
		if len(entries) > 0 {
			listing.Groups = append(listing.Groups, catalogGroup{Category: g.Category, Entries: entries})
		}
	}
	if properties {
		listing.Properties = slices.Collect(complete.MatchProperties(filter, d.API().Properties()))
	}
	return listing
}

func filterEntries[E complete.Entry](filter string, entries []E, conv func(E) catalogEntry) []catalogEntry {
	var out []catalogEntry
	for e := range complete.Match(filter, entries) {
		out = append(out, conv(e))
	}
	return out
}

// writeListing prints one block per category. Names sit in a column sized
// to the widest name in the listing; descriptions wrap to width and
// continue under the description column.
func writeListing(w io.Writer, listing catalogListing, width int) error {
	nameCol := 0
	for _, g := range listing.Groups {
		for _, e := range g.Entries {
			nameCol = max(nameCol, runewidth.StringWidth(e.Name))
		}
	}
	nameCol = min(nameCol, maxNameColumn)
	descCol := 2 + nameCol + 2
	wrapAt := max(width-descCol, 20)

	ew := &errWriter{w: w}
	for i, g := range listing.Groups {
		if i > 0 {
			ew.printf("\n")
		}
		ew.printf("%s\n", g.Category)
		for _, e := range g.Entries {
			desc := e.Description
			if e.Default != "" {
				desc += " [" + e.Default + "]"
			}
			if e.Signature != "" && e.Signature != e.Name {
				desc = e.Signature + "\n" + desc
			}
			name := runewidth.FillRight(e.Name, nameCol)
			if runewidth.StringWidth(e.Name) > nameCol {
				// Overlong names get the description on the next line.
				ew.printf("  %s\n", e.Name)
				name = strings.Repeat(" ", nameCol)
			}
			first, rest, _ := strings.Cut(wrapText(desc, wrapAt), "\n")
			ew.printf("  %s  %s\n", name, first)
			if rest != "" {
				ew.printf("%s\n", indent.String(rest, uint(descCol))) // #nosec G115 -- small positive column
			}
		}
	}
	if len(listing.Properties) > 0 {
		if len(listing.Groups) > 0 {
			ew.printf("\n")
		}
		ew.printf("properties\n")
		ew.printf("%s\n", indent.String(wordwrap.String(strings.Join(listing.Properties, " "), max(width-2, 20)), 2))
	}
	return ew.err
}

// wrapText word-wraps each line of s separately.
func wrapText(s string, limit int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = wordwrap.String(l, limit)
	}
	return strings.Join(lines, "\n")
}

// errWriter captures the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func init() {
	rootCmd.AddCommand(CatalogCommand())
}
