package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	autoCmd := &cobra.Command{Use: "autobiography", Short: "Autobiography operations"}

	// get
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the caller's autobiography with step progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/me/autobiography")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	autoCmd.AddCommand(getCmd)

	// save
	var file string
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the caller's autobiography from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var payload json.RawMessage
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("invalid JSON in %s: %w", file, err)
			}
			data, err := doPutJSON("/api/me/autobiography", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	saveCmd.Flags().StringVarP(&file, "file", "f", "", "JSON file holding the autobiography data (required)")
	_ = saveCmd.MarkFlagRequired("file")
	autoCmd.AddCommand(saveCmd)

	// generate
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a narrative from the saved autobiography",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON("/api/me/autobiography/generate", map[string]interface{}{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	autoCmd.AddCommand(generateCmd)

	rootCmd.AddCommand(autoCmd)
}
