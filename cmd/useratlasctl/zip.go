package main

import (
	"github.com/spf13/cobra"
)

func init() {
	zipCmd := &cobra.Command{Use: "zip", Short: "ZIP code operations"}

	validateCmd := &cobra.Command{
		Use:   "validate ZIP_CODE",
		Short: "Validate a ZIP code against the geocoding provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().R().Get("/api/zipcodes/validate/" + args[0])
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
	zipCmd.AddCommand(validateCmd)

	rootCmd.AddCommand(zipCmd)
}
