package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/config"
	"github.com/coderefine/coderefine/internal/editor"
	perrors "github.com/coderefine/coderefine/internal/errors"
	"github.com/coderefine/coderefine/internal/export"
	"github.com/coderefine/coderefine/internal/snippets"
)

var (
	codeLanguage string
	analyzeJSON  bool
	refineAction string
	refineOut    string
	refineReport string
	refineShare  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Show complexity metrics and a review of a file",
	Long: `Sends FILE to the analysis endpoint and prints the complexity report and
the review. The language is taken from --language, then the file extension,
then the configured default.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var refineCmd = &cobra.Command{
	Use:   "refine FILE",
	Short: "Rewrite a file to fix bugs, optimize it or refactor it",
	Long: `Sends FILE to the refinement endpoint and prints the refined code on stdout.

Examples:
  coderefine refine main.py --action bugs
  coderefine refine main.py --action performance --out main_fast.py
  coderefine refine main.py --action refactor --report md --share`,
	Args: cobra.ExactArgs(1),
	RunE: runRefine,
}

func init() {
	analyzeCmd.Flags().StringVar(&codeLanguage, "language", "", "Language of the code")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")

	refineCmd.Flags().StringVar(&codeLanguage, "language", "", "Language of the code")
	refineCmd.Flags().StringVar(&refineAction, "action", "", "What to do: bugs, performance or refactor")
	refineCmd.Flags().StringVar(&refineOut, "out", "", "Write the refined code to this file instead of stdout")
	refineCmd.Flags().StringVar(&refineReport, "report", "", "Also write a report to the export dir: md or yaml")
	refineCmd.Flags().BoolVar(&refineShare, "share", false, "Store the refined code and print its share link")
	_ = refineCmd.MarkFlagRequired("action")

	rootCmd.AddCommand(analyzeCmd, refineCmd)
}

// readCode loads a source file the way the editor does and picks its language
func readCode(cmd *cobra.Command, cfg *config.Config, path string) (code, language string, err error) {
	if err := checkLanguage(codeLanguage); err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", perrors.E(perrors.Op("cmd.readCode"), perrors.KindIO, err)
	}
	code, clamped := editor.Clamp(editor.Normalize(string(data)))
	if clamped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s limited to %d lines\n", path, editor.MaxLines)
	}

	language = codeLanguage
	if language == "" {
		if detected, ok := editor.DetectLanguage(filepath.Ext(path)); ok {
			language = detected
		} else {
			language = cfg.GetDefaultLanguage()
		}
	}
	return code, language, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := requireSession()
	if err != nil {
		return err
	}
	code, language, err := readCode(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	res, err := newClient(cfg, sess.Token).Analyze(cmd.Context(), code, language)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printComplexity(out, "Complexity", res.Complexity)
	if res.Analysis != "" {
		fmt.Fprintf(out, "\n%s\n", res.Analysis)
	}
	return nil
}

func printComplexity(w io.Writer, title string, c api.ComplexityReport) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "  Time:       %s\n", c.TimeComplexity)
	fmt.Fprintf(w, "  Space:      %s\n", c.SpaceComplexity)
	fmt.Fprintf(w, "  Nesting:    %d\n", c.NestingDepth)
	fmt.Fprintf(w, "  Cyclomatic: %d\n", c.CyclomaticComplexity)
	if c.LinesOfCode != nil {
		fmt.Fprintf(w, "  Lines:      %d\n", *c.LinesOfCode)
	}
}

func runRefine(cmd *cobra.Command, args []string) error {
	action, err := api.ParseAction(refineAction)
	if err != nil {
		return err
	}
	var reporter export.Exporter
	if refineReport != "" {
		if refineReport != "md" && refineReport != "yaml" {
			return fmt.Errorf("unsupported report format %q (supported: md, yaml)", refineReport)
		}
		if reporter, err = export.NewExporter(refineReport); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := requireSession()
	if err != nil {
		return err
	}
	code, language, err := readCode(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	res, err := newClient(cfg, sess.Token).Refine(cmd.Context(), code, language, action)
	if err != nil {
		return fmt.Errorf("refinement failed: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	if refineOut != "" {
		if err := os.WriteFile(refineOut, []byte(res.RefinedCode), 0644); err != nil {
			return perrors.ExportFailed(refineOut, err)
		}
		fmt.Fprintf(stderr, "Refined code written to %s\n", refineOut)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), res.RefinedCode)
		if res.RefinedCode != "" && res.RefinedCode[len(res.RefinedCode)-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if reporter != nil {
		report, err := export.NewReport(&res, time.Now())
		if err != nil {
			return err
		}
		path, err := export.WriteFile(cfg.GetExportDir(), reporter, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Report written to %s\n", path)
	}

	if refineShare {
		store, err := snippets.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to open snippet store: %w", err)
		}
		defer store.Close()

		sn, err := store.Create(cmd.Context(), res.RefinedCode, res.Language, string(res.Action))
		if err != nil {
			return fmt.Errorf("failed to share: %w", err)
		}
		fmt.Fprintf(stderr, "Share link: %s\n", sn.Link())
	}
	return nil
}
