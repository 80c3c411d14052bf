package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/lifecoach/internal/config"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/service"
)

func TokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint an API token for an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				user, err := repository.NewUserRepository(database).ByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				token, err := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry).GenerateJWT(user)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}
}
