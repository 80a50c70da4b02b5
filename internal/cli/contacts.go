package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osa911/portfolio/internal/app"
	"github.com/osa911/portfolio/internal/models"

	"github.com/spf13/cobra"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Read stored contact messages",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent contact messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		full, _ := cmd.Flags().GetBool("full")
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			contacts, err := a.DB.Contacts.List(ctx, limit)
			if err != nil {
				return err
			}
			printContacts(cmd.OutOrStdout(), contacts, full)
			return nil
		})
	},
}

func printContacts(out io.Writer, contacts []*models.ContactMessage, full bool) {
	if len(contacts) == 0 {
		fmt.Fprintln(out, "No contact messages found")
		return
	}

	if full {
		for _, c := range contacts {
			fmt.Fprintf(out, "── %s ── %s\nFrom: %s <%s>\nSubject: %s\n\n%s\n\n",
				c.ID, c.CreatedAt.Format("2006-01-02 15:04"), c.Name, c.Email, c.SubjectOrDefault(), c.Message)
		}
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tNAME\tEMAIL\tSUBJECT")
	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Name, c.Email, c.SubjectOrDefault())
	}
	w.Flush()
}

func init() {
	contactsCmd.AddCommand(contactsListCmd)

	contactsListCmd.Flags().Int("limit", 20, "Maximum number of messages (0 for all)")
	contactsListCmd.Flags().Bool("full", false, "Print message bodies")
}
