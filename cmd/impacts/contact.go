package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theimpacts/impacts/internal/status"
	"github.com/theimpacts/impacts/internal/submit"
	"github.com/theimpacts/impacts/internal/tui"
)

func newContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact",
		Short: "Fill in the contact form from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			client := submit.New(cfg.API.BaseURL,
				submit.WithTimeout(cfg.API.Timeout),
				submit.WithLogger(log.Named("submit")),
			)
			return tui.Run(cmd.Context(), client, cfg.PrefsPath)
		},
	}
}

func newSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe EMAIL",
		Short: "Subscribe an email address to the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			client := submit.New(cfg.API.BaseURL,
				submit.WithTimeout(cfg.API.Timeout),
				submit.WithLogger(log.Named("submit")),
			)

			err = submit.ErrValidation
			if email := strings.TrimSpace(args[0]); email != "" {
				err = client.SubmitNewsletter(cmd.Context(), email)
			}
			state := status.Classify(err)
			msg := status.Message(status.KindNewsletter, state)
			if state != status.Success {
				return errors.New(msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
