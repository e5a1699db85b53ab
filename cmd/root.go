package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/coderefine/coderefine/internal/app"
	"github.com/coderefine/coderefine/internal/config"
	"github.com/coderefine/coderefine/internal/editor"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/snippets"
)

var (
	debugMode             bool
	quietMode             bool
	apiURL                string
	openPath              string
	languageFlag          string
	sharedLink            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "coderefine",
	Short: "Terminal client for the code refinement service",
	Long: `coderefine edits code in the terminal and sends it to the refinement service
for complexity analysis, bug fixing, performance optimization or refactoring.

Run without a subcommand to start the interactive editor.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Base URL of the refinement service (overrides config and "+config.EnvAPIBaseURL+")")

	rootCmd.Flags().StringVar(&openPath, "file", "", "Open this file in the editor")
	rootCmd.Flags().StringVar(&languageFlag, "language", "", "Language of the code (default from config)")
	rootCmd.Flags().StringVar(&sharedLink, "shared", "", "Open a shared snippet link after signing in")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context so requests in flight are abandoned.
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("coderefine %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("coderefine %s\n", version)
}

// loadConfig loads the config file and applies the service URL overrides.
// --api wins over CODEREFINE_API, which wins over the file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if env := os.Getenv(config.EnvAPIBaseURL); env != "" {
		if err := cfg.SetAPIBaseURL(env); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", config.EnvAPIBaseURL, err)
		}
	}
	if apiURL != "" {
		if err := cfg.SetAPIBaseURL(apiURL); err != nil {
			return nil, fmt.Errorf("invalid --api: %w", err)
		}
	}
	return cfg, nil
}

// checkLanguage rejects a --language value the editor does not know
func checkLanguage(lang string) error {
	if lang != "" && !editor.IsLanguage(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := checkLanguage(languageFlag); err != nil {
		return err
	}
	if sharedLink != "" {
		if _, err := snippets.ParseLink(sharedLink); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	opts := []app.Option{
		app.WithInitialFile(openPath),
		app.WithSharedLink(sharedLink),
	}
	if languageFlag != "" {
		opts = append(opts, app.WithLanguage(languageFlag))
	}

	// Sharing is optional, the editor works without the store
	if store, err := snippets.OpenDefault(); err != nil {
		logger.Warn("snippet store unavailable: %v", err)
	} else {
		defer store.Close()
		opts = append(opts, app.WithSnippets(store))
	}

	m := app.New(cfg, version, opts...)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
