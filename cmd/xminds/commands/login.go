package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fivetwenty-io/xminds-client/internal/auth"
	"github.com/fivetwenty-io/xminds-client/internal/config"
	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loginSummary describes an established session without exposing secrets.
type loginSummary struct {
	Endpoint    string     `json:"endpoint"              yaml:"endpoint"`
	Role        string     `json:"role"                  yaml:"role"`
	Account     string     `json:"account,omitempty"     yaml:"account,omitempty"`
	DatabaseID  string     `json:"database_id,omitempty" yaml:"database_id,omitempty"`
	Token       string     `json:"token"                 yaml:"token"`
	Refreshable bool       `json:"refreshable"           yaml:"refreshable"`
	Subject     string     `json:"subject,omitempty"     yaml:"subject,omitempty"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"   yaml:"issued_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"  yaml:"expires_at,omitempty"`
	Expired     *bool      `json:"expired,omitempty"     yaml:"expired,omitempty"`
	SavedTo     string     `json:"saved_to,omitempty"    yaml:"saved_to,omitempty"`
}

func newLoginCommand(opts *globalOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and show the session",
		Long: `Log in with the configured role and print the session: role, account, a
preview of the access token and its decoded claims. The password is read from
XMINDS_API_PWD or prompted for.

With --save, the endpoint, role, account and database are written to the
config file. The password and tokens are never saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := opts.output()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.LoginPromptTimeout)
			defer cancel()

			client, cfg, err := opts.connect(ctx, cmd)
			if err != nil {
				return err
			}

			credential := client.Credential()

			summary := loginSummary{
				Endpoint:    cfg.Endpoint,
				Role:        string(client.Role()),
				Account:     accountName(cfg),
				DatabaseID:  cfg.DatabaseID,
				Token:       preview(credential.AccessToken),
				Refreshable: credential.HasRefreshToken(),
			}

			claims, err := auth.ParseClaims(credential.AccessToken)
			if err == nil {
				summary.Subject = claims.Subject
				summary.IssuedAt = optionalTime(claims.IssuedAt)
				summary.ExpiresAt = optionalTime(claims.ExpiresAt)

				if summary.ExpiresAt != nil {
					expired := claims.Expired(time.Now())
					summary.Expired = &expired
				}
			} else {
				logger := opts.logger(cmd.ErrOrStderr())
				logger.Debug().Err(fmt.Errorf("%w: %w", constants.ErrNotAJWT, err)).Msg("Token claims unavailable")
			}

			if save {
				path := opts.configFile
				if path == "" {
					path, err = config.DefaultPath()
					if err != nil {
						return err
					}
				}

				err = config.Save(path, cfg)
				if err != nil {
					return err
				}

				summary.SavedTo = path
			}

			return renderLoginSummary(cmd, output, &summary)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save the non-secret settings to the config file")

	return cmd
}

func renderLoginSummary(cmd *cobra.Command, output string, summary *loginSummary) error {
	out := cmd.OutOrStdout()

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(summary)
	case constants.FormatYAML:
		return yaml.NewEncoder(out).Encode(summary)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")
	_ = table.Append("Endpoint", summary.Endpoint)
	_ = table.Append("Role", summary.Role)

	if summary.Account != "" {
		_ = table.Append("Account", summary.Account)
	}

	if summary.DatabaseID != "" {
		_ = table.Append("Database", summary.DatabaseID)
	}

	_ = table.Append("Token", summary.Token)
	_ = table.Append("Refreshable", fmt.Sprintf("%t", summary.Refreshable))

	if summary.Subject != "" {
		_ = table.Append("Subject", summary.Subject)
	}

	if summary.IssuedAt != nil {
		_ = table.Append("Issued", summary.IssuedAt.Format(time.RFC3339))
	}

	if summary.ExpiresAt != nil {
		_ = table.Append("Expires", summary.ExpiresAt.Format(time.RFC3339))
	}

	if summary.Expired != nil {
		_ = table.Append("Expired", fmt.Sprintf("%t", *summary.Expired))
	}

	if summary.SavedTo != "" {
		_ = table.Append("Saved to", summary.SavedTo)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// preview shortens a token for display.
func preview(token string) string {
	if len(token) <= constants.TokenPreviewLength {
		return token
	}

	return token[:constants.TokenPreviewLength] + "..."
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	utc := t.UTC()

	return &utc
}
