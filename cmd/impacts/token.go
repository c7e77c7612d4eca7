package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/config"
	"github.com/theimpacts/impacts/internal/db"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage admin API tokens",
	}
	cmd.AddCommand(newTokenCreateCmd(), newTokenListCmd(), newTokenRevokeCmd())
	return cmd
}

// openTokenStore opens and migrates the configured database.
func openTokenStore() (*sqlx.DB, *auth.SQLTokenStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database, cfg.DB.Driver); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return database, auth.NewSQLTokenStore(database), nil
}

func newTokenCreateCmd() *cobra.Command {
	var (
		name    string
		expires time.Duration
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a token; the plaintext is shown once",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, ts, err := openTokenStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			plaintext, hash, err := auth.GenerateToken()
			if err != nil {
				return err
			}
			var expiresAt *time.Time
			if expires > 0 {
				t := time.Now().UTC().Add(expires)
				expiresAt = &t
			}
			rec, err := ts.Create(cmd.Context(), name, hash, expiresAt)
			if err != nil {
				return fmt.Errorf("create token: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:    %s\n", rec.ID)
			fmt.Fprintf(out, "token: %s\n", plaintext)
			fmt.Fprintln(out, "Store this token now; it cannot be shown again.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "label for the token")
	cmd.Flags().DurationVar(&expires, "expires", 0, "lifetime, e.g. 720h (0 = never)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTokenListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, ts, err := openTokenStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			tokens, err := ts.List(cmd.Context())
			if err != nil {
				return err
			}
			now := time.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED\tLAST USED\tSTATE")
			for _, t := range tokens {
				lastUsed := "never"
				if t.LastUsedAt.Valid {
					lastUsed = humanize.Time(t.LastUsedAt.Time)
				}
				state := "active"
				switch {
				case t.RevokedAt.Valid:
					state = "revoked"
				case !t.Active(now):
					state = "expired"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, humanize.Time(t.CreatedAt), lastUsed, state)
			}
			return w.Flush()
		},
	}
}

func newTokenRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke ID",
		Short: "Revoke a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, ts, err := openTokenStore()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := ts.Revoke(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("revoke %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "revoked %s\n", args[0])
			return nil
		},
	}
}
