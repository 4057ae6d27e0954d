package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	exportCmd := &cobra.Command{Use: "export", Short: "Export the caller's autobiography as a document"}

	var out string
	pdfCmd := &cobra.Command{
		Use:   "pdf",
		Short: "Download the autobiography as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doDownload("/api/me/export/pdf", out); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "wrote %s\n", out)
			return nil
		},
	}
	pdfCmd.Flags().StringVarP(&out, "out", "o", "autobiography.pdf", "Output file")
	exportCmd.AddCommand(pdfCmd)

	var outDocx string
	docxCmd := &cobra.Command{
		Use:   "docx",
		Short: "Download the autobiography as a DOCX",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doDownload("/api/me/export/docx", outDocx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "wrote %s\n", outDocx)
			return nil
		},
	}
	docxCmd.Flags().StringVarP(&outDocx, "out", "o", "autobiography.docx", "Output file")
	exportCmd.AddCommand(docxCmd)

	rootCmd.AddCommand(exportCmd)
}
