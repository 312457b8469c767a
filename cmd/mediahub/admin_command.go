package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/mediahub/config"
	sqlitestore "github.com/bnema/mediahub/internal/adapter/storage/sqlite"
	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/service"
)

func newAdminCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}
	cmd.AddCommand(newAdminCreateCommand(ctx))
	cmd.AddCommand(newAdminListCommand(ctx))
	return cmd
}

func newAdminCreateCommand(ctx *commandContext) *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with an administrative role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(strings.ToLower(strings.TrimSpace(role)))
			if !r.IsAdmin() {
				return fmt.Errorf("role %q is not an administrative role", role)
			}
			return ctx.withStore(func(cfg *config.Config, store *sqlitestore.Store) error {
				auth := service.NewAuthService(store, cfg.JWTSecret, cfg.TokenTTL())
				user, err := auth.CreateAdmin(cmd.Context(), name, email, password, r)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", user.Role, user.Email, user.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleSuperAdmin), "Role: moderator, content_manager or super_admin")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAdminListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account with its role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *sqlitestore.Store) error {
				users, err := service.NewAuthService(store, cfg.JWTSecret, cfg.TokenTTL()).ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				if len(users) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No accounts")
					return nil
				}
				rows := make([][]string, 0, len(users))
				for _, u := range users {
					rows = append(rows, []string{u.ID, u.Name, u.Email, string(u.Role), u.CreatedAt.Format(time.DateOnly)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Email", "Role", "Created"}, rows))
				return nil
			})
		},
	}
}
