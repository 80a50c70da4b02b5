package cli

import (
	"fmt"
	"time"

	"github.com/osa911/portfolio/internal/app"
	"github.com/osa911/portfolio/internal/mailer"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/service"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Check the mail relay configuration",
}

var mailVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Connect and authenticate to the mail relay",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.NewMailer(cfg)
		if err != nil {
			return err
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Connecting to %s...", m.Address())
		s.Writer = cmd.ErrOrStderr()
		s.Start()
		err = m.Verify(cmd.Context())
		s.Stop()

		if err != nil {
			return fmt.Errorf("✗ mail relay %s: %w", m.Address(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Authenticated to %s as %s\n", m.Address(), m.Sender())
		return nil
	},
}

var mailTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a sample contact notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			to = cfg.Recipient()
		}
		if to == "" {
			return fmt.Errorf("no recipient: pass --to or set CONTACT_RECIPIENT")
		}

		m, err := app.NewMailer(cfg)
		if err != nil {
			return err
		}

		msg, err := sampleNotification(to, time.Now())
		if err != nil {
			return err
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Sending test message to %s...", to)
		s.Writer = cmd.ErrOrStderr()
		s.Start()
		err = m.Send(cmd.Context(), msg)
		s.Stop()

		if err != nil {
			return fmt.Errorf("✗ test message not sent: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Test message sent to %s\n", to)
		return nil
	},
}

// sampleNotification renders the same email a real submission produces
func sampleNotification(to string, now time.Time) (mailer.Message, error) {
	return service.ComposeContactEmail(&models.ContactMessage{
		Name:      "Portfolio CLI",
		Email:     to,
		Subject:   "Test message",
		Message:   "This is a test message sent by `portfolio mail test`.",
		CreatedAt: now,
	}, to)
}

func init() {
	mailCmd.AddCommand(mailVerifyCmd)
	mailCmd.AddCommand(mailTestCmd)

	mailTestCmd.Flags().String("to", "", "Recipient (defaults to CONTACT_RECIPIENT or EMAIL_USER)")
}
