package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	adminCmd := &cobra.Command{Use: "admin", Short: "Admin operations (allow-listed callers only)"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every stored autobiography record",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/admin/autobiographies")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	adminCmd.AddCommand(listCmd)

	rootCmd.AddCommand(adminCmd)
}
