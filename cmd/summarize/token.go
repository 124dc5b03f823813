package main

import (
	"errors"
	"fmt"
	"time"

	hauth "text-summarizer/internal/handler/http/auth"
	envconfig "text-summarizer/pkg/config"

	"github.com/spf13/cobra"
)

// NewTokenCmd creates the token command, which issues a bearer token for
// servers started with JWT_SECRET.
func NewTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API server",
		Long: `Issue an HS256 bearer token signed with JWT_SECRET. Send it to the
API server as "Authorization: Bearer <token>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := envconfig.LoadDotEnv(); err != nil {
				return err
			}
			secret := envconfig.GetEnvString("JWT_SECRET", "")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := hauth.IssueToken([]byte(secret), subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringP("subject", "s", "cli", "Token subject")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
