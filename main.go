// localterm — bilingual glossary lookup panel for translation glossary CSV exports.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vgdata/localterm/anchor"
	"github.com/vgdata/localterm/config"
	"github.com/vgdata/localterm/csvfile"
	"github.com/vgdata/localterm/export"
	"github.com/vgdata/localterm/glossary"
	"github.com/vgdata/localterm/i18n"
	"github.com/vgdata/localterm/langmeta"
	"github.com/vgdata/localterm/settings"
	"github.com/vgdata/localterm/tui"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	glossaryDir string
	verbose     bool
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localterm",
		Short: "Bilingual glossary lookup panel",
		Long: `localterm — bilingual glossary lookup panel.

Loads terminology exported from a translation management system as
Weblate-style 8-column CSV, merges two language files into a searchable
two-language term index, highlights duplicate and divergent entries,
and deep-links each term into the glossary wiki.

Commands:
  browse      Interactive panel (default)
  list        Print the merged term index
  files       List discovered glossary language files
  copy        Copy a term's clipboard line
  note        Assemble a note document for a term
  open        Open a term's glossary wiki page`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.Init("")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse()
		},
	}

	// Global persistent flags — inherited by all subcommands
	root.PersistentFlags().StringVar(&glossaryDir, "dir", "", "Glossary directory (default: auto-detected)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped malformed rows")

	root.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newFilesCmd(),
		newCopyCmd(),
		newNoteCmd(),
		newOpenCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("localterm version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// Shared setup
// ---------------------------------------------------------------------------

// setup resolves the project, loads persisted settings, and maps the
// stored language file names onto the current directory listing.
func setup() (*config.Project, *settings.Settings, []string, error) {
	proj, err := config.Detect(".", glossaryDir)
	if err != nil {
		return nil, nil, nil, err
	}
	sts := settings.Load()
	files := config.ListLanguageFiles(proj.GlossaryDir)
	return proj, sts, files, nil
}

// loadSelected loads and merges the currently selected language files.
func loadSelected(proj *config.Project, sts *settings.Settings, files []string) (*glossary.Glossary, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf(i18n.T("No glossary files found in %s"), proj.GlossaryDir)
	}
	i1, i2 := config.ResolveSelection(files, sts.Lang1File, sts.Lang2File)

	path2 := ""
	if i2 != i1 {
		path2 = files[i2]
	}
	g, err := glossary.Load(files[i1], path2, sts.TrackChanges)
	if err != nil {
		return nil, err
	}
	if g.SecondaryErr != nil {
		logWarning("second language skipped: %v", g.SecondaryErr)
	}
	if verbose {
		if g.Skipped1 > 0 {
			logWarning(i18n.N("%d malformed row skipped in %s", "%d malformed rows skipped in %s", g.Skipped1), g.Skipped1, g.Lang1File)
		}
		if g.Skipped2 > 0 {
			logWarning(i18n.N("%d malformed row skipped in %s", "%d malformed rows skipped in %s", g.Skipped2), g.Skipped2, g.Lang2File)
		}
	}
	return g, nil
}

// urlBase prefers the persisted setting over the project default.
func urlBase(proj *config.Project, sts *settings.Settings) string {
	if sts.URLBase != "" {
		return sts.URLBase
	}
	return proj.URLBase
}

// findRow locates a merged row by row key, falling back to the first
// row whose base term matches.
func findRow(g *glossary.Glossary, term string) (glossary.DisplayRow, error) {
	for _, r := range g.Rows {
		if r.Key == term {
			return r, nil
		}
	}
	for _, r := range g.Rows {
		if r.Term == term {
			return r, nil
		}
	}
	return glossary.DisplayRow{}, fmt.Errorf(i18n.T("term %q not found"), term)
}

// ---------------------------------------------------------------------------
// browse (interactive panel)
// ---------------------------------------------------------------------------

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive glossary panel",
		Long: `Open the interactive two-language glossary panel.

Duplicate source terms are highlighted dark orange on pale yellow,
divergent translations (with change tracking on) dark orange on pale
green. Language selection, colors, and toggles persist between runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse()
		},
	}

	return cmd
}

func runBrowse() error {
	proj, sts, files, err := setup()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf(i18n.T("No glossary files found in %s"), proj.GlossaryDir)
	}

	_, err = tea.NewProgram(tui.New(proj, sts), tea.WithAltScreen()).Run()
	return err
}

// ---------------------------------------------------------------------------
// list (print the merged index)
// ---------------------------------------------------------------------------

func newListCmd() *cobra.Command {
	var asTSV bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the merged term index",
		Long: `Print the merged two-language term index to stdout.

The marker column flags duplicate (D) and changed (C) rows. With --tsv
the output is tab-separated clipboard format, one row per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(asTSV)
		},
	}

	cmd.Flags().BoolVar(&asTSV, "tsv", false, "Tab-separated output (term, target, lang2, anchor URL)")

	return cmd
}

func runList(asTSV bool) error {
	proj, sts, files, err := setup()
	if err != nil {
		return err
	}
	g, err := loadSelected(proj, sts, files)
	if err != nil {
		return err
	}

	if asTSV {
		base := urlBase(proj, sts)
		for _, row := range g.Rows {
			fmt.Println(export.TSVLine(row, base))
		}
		return nil
	}

	lang2 := g.Lang2Name
	if lang2 == "" {
		lang2 = "-"
	}
	fmt.Printf("%-2s %-28s %-28s %-28s\n", "", i18n.T("Term"), g.Lang1Name, lang2)
	fmt.Println(strings.Repeat("─", 88))
	for _, row := range g.Rows {
		fmt.Printf("%-2s %-28s %-28s %-28s\n", classMarker(row.Class), row.Key, row.Target, row.Second)
	}
	logInfo("%d terms", len(g.Rows))
	return nil
}

// classMarker returns the one-letter highlight marker for listings.
func classMarker(c glossary.Class) string {
	switch c {
	case glossary.ClassDuplicate:
		return "D"
	case glossary.ClassChanged:
		return "C"
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// files (list discovered language files)
// ---------------------------------------------------------------------------

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List discovered glossary language files",
		Long: `List the glossary CSV files found in the glossary directory.

Each file's display name comes from its endonym metadata row when
present, else from the language code in its file name. The currently
selected Language 1 and Language 2 are marked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles()
		},
	}

	return cmd
}

func runFiles() error {
	proj, sts, files, err := setup()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf(i18n.T("No glossary files found in %s"), proj.GlossaryDir)
	}
	i1, i2 := config.ResolveSelection(files, sts.Lang1File, sts.Lang2File)

	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Language files"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	for i, path := range files {
		marker := "   "
		switch {
		case i == i1 && i == i2:
			marker = "1+2"
		case i == i1:
			marker = "1  "
		case i == i2:
			marker = "2  "
		}
		fmt.Fprintf(os.Stderr, "  %s %-20s %s\n", marker, filepath.Base(path), fileDisplayName(path))
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

// fileDisplayName parses a file just far enough to label it: the
// endonym metadata row wins, else the file name's language code.
func fileDisplayName(path string) string {
	rows, _, err := csvfile.ParseFile(path)
	if err != nil {
		return langmeta.DisplayName("", path)
	}
	endonym := ""
	for _, row := range rows {
		if langmeta.IsMetadata(row.Context, row.Source, langmeta.EndonymKey) {
			endonym = row.Target
			break
		}
	}
	return langmeta.DisplayName(endonym, path)
}

// ---------------------------------------------------------------------------
// copy (clipboard export for one term)
// ---------------------------------------------------------------------------

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <term>",
		Short: "Copy a term's clipboard line",
		Long: `Copy a term's tab-separated line to the system clipboard:
term, Language-1 translation, Language-2 translation, anchor URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(args[0])
		},
	}

	return cmd
}

func runCopy(term string) error {
	proj, sts, files, err := setup()
	if err != nil {
		return err
	}
	g, err := loadSelected(proj, sts, files)
	if err != nil {
		return err
	}
	row, err := findRow(g, term)
	if err != nil {
		return err
	}
	if err := export.Copy(row, urlBase(proj, sts)); err != nil {
		return err
	}
	logSuccess("%s", i18n.T("Copied to clipboard"))
	return nil
}

// ---------------------------------------------------------------------------
// note (assemble a note document)
// ---------------------------------------------------------------------------

func newNoteCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "note <term>",
		Short: "Assemble a note document for a term",
		Long: `Assemble the labeled note block for a term (term, translations with
their translator comments, anchor URL) and print it to stdout. With
--edit the note is written to a file and opened in the editor instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNote(args[0], write)
		},
	}

	cmd.Flags().BoolVar(&write, "edit", false, "Write the note to a file and open it")

	return cmd
}

func runNote(term string, edit bool) error {
	proj, sts, files, err := setup()
	if err != nil {
		return err
	}
	g, err := loadSelected(proj, sts, files)
	if err != nil {
		return err
	}
	row, err := findRow(g, term)
	if err != nil {
		return err
	}

	if !edit {
		fmt.Print(export.Note(row, g.Lang1Name, g.Lang2Name, urlBase(proj, sts)))
		return nil
	}

	path, err := export.WriteNote(row, g.Lang1Name, g.Lang2Name, urlBase(proj, sts))
	if err != nil {
		return err
	}
	if err := export.OpenFile(path); err != nil {
		logWarning("could not open editor: %v", err)
	}
	logSuccess("note written to %s", path)
	return nil
}

// ---------------------------------------------------------------------------
// open (glossary wiki page)
// ---------------------------------------------------------------------------

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <term>",
		Short: "Open a term's glossary wiki page",
		Long: `Compose the term's anchor into an absolute URL and open it in the
default browser. Terms without an anchor have no page to open.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(args[0])
		},
	}

	return cmd
}

func runOpen(term string) error {
	proj, sts, files, err := setup()
	if err != nil {
		return err
	}
	g, err := loadSelected(proj, sts, files)
	if err != nil {
		return err
	}
	row, err := findRow(g, term)
	if err != nil {
		return err
	}

	url := anchor.Compose(row.Anchor, urlBase(proj, sts))
	if url == "" {
		return fmt.Errorf(i18n.T("no anchor for term %q"), term)
	}
	if err := export.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	logSuccess("opened %s", url)
	return nil
}
