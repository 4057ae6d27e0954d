package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	shareCmd := &cobra.Command{Use: "share", Short: "Share operations"}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Publish the caller's saved autobiography as a shared story",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON("/api/me/shares", map[string]interface{}{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	shareCmd.AddCommand(createCmd)

	getCmd := &cobra.Command{
		Use:   "get SHARE_ID",
		Short: "Fetch a shared story by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("/api/shares/%s", args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	shareCmd.AddCommand(getCmd)

	rootCmd.AddCommand(shareCmd)
}
