package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User record operations"}

	// create
	var name, zip string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || zip == "" {
				return fmt.Errorf("--name and --zip required")
			}
			resp, err := newClient().R().
				SetBody(map[string]string{"name": name, "zipCode": zip}).
				Post("/api/users")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	createCmd.Flags().StringVarP(&zip, "zip", "z", "", "US ZIP code (required)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("zip")
	usersCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/users/" + args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	usersCmd.AddCommand(getCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/users")
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	usersCmd.AddCommand(listCmd)

	// update
	var newName, newZip string
	updateCmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a user's name and/or ZIP code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{}
			if newName != "" {
				payload["name"] = newName
			}
			if newZip != "" {
				payload["zipCode"] = newZip
			}
			resp, err := newClient().R().
				SetBody(payload).
				Patch("/api/users/" + args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	updateCmd.Flags().StringVarP(&newName, "name", "n", "", "New display name")
	updateCmd.Flags().StringVarP(&newZip, "zip", "z", "", "New US ZIP code")
	usersCmd.AddCommand(updateCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Delete("/api/users/" + args[0])
			if err != nil {
				return err
			}
			if resp.IsError() {
				return printResponse(resp)
			}
			fmt.Println("deleted")
			return nil
		},
	}
	usersCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(usersCmd)
}
