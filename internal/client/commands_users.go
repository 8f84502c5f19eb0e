package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-courses-api/models"
)

func (a *App) usersCommand() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List and register users",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users (requires credentials)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			users, err := a.adapter.ListUsers(ctx)
			if err != nil {
				return err
			}

			renderUsers(a.out, users)
			return nil
		},
	}

	var request models.UserRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := a.adapter.CreateUser(ctx, request); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "User created.")
			return nil
		},
	}
	bindStringFlag(createCmd, &request.FirstName, "first-name", "first name of the user")
	bindStringFlag(createCmd, &request.LastName, "last-name", "last name of the user")
	bindStringFlag(createCmd, &request.EmailAddress, "user-email", "email address of the user")
	bindStringFlag(createCmd, &request.Password, "user-password", "password of the user")

	usersCmd.AddCommand(listCmd, createCmd)
	return usersCmd
}
