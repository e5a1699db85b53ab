package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coderefine/coderefine/internal/snippets"
)

var (
	snippetLimit int
	skipConfirm  bool
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Manage shared snippets",
	Long:  `Commands for listing, printing and deleting the snippets stored in ~/.coderefine/snippets.db.`,
}

var snippetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shared snippets, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSnippetsList,
}

var snippetsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a snippet's code",
	Long:  `Prints the code of a snippet. ID may be a bare id or a coderefine://snippet/ link.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetsShow,
}

var snippetsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetsDelete,
}

func init() {
	snippetsListCmd.Flags().IntVarP(&snippetLimit, "limit", "n", 20, "Maximum number of snippets to list (0 for all)")
	snippetsDeleteCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")

	snippetsCmd.AddCommand(snippetsListCmd, snippetsShowCmd, snippetsDeleteCmd)
	rootCmd.AddCommand(snippetsCmd)
}

func runSnippetsList(cmd *cobra.Command, _ []string) error {
	store, err := snippets.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open snippet store: %w", err)
	}
	defer store.Close()

	list, err := store.List(cmd.Context(), snippetLimit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No shared snippets.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLANGUAGE\tACTION\tLINES\tCREATED")
	for _, sn := range list {
		action := sn.Action
		if action == "" {
			action = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			sn.ID, sn.Language, action, strings.Count(sn.Code, "\n")+1,
			sn.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runSnippetsShow(cmd *cobra.Command, args []string) error {
	store, err := snippets.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open snippet store: %w", err)
	}
	defer store.Close()

	sn, err := store.Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), sn.Code)
	if !strings.HasSuffix(sn.Code, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func runSnippetsDelete(cmd *cobra.Command, args []string) error {
	id, err := snippets.ParseLink(args[0])
	if err != nil {
		return err
	}

	store, err := snippets.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open snippet store: %w", err)
	}
	defer store.Close()

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Delete snippet %s?", id)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := store.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted snippet %s\n", id)
	return nil
}
