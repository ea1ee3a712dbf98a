package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper/pkg/export"
)

var (
	exportOut      string
	exportContacts bool
	exportNotes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records as Markdown with YAML frontmatter",
	Long: `Export writes one Markdown file per record into --out. By default
both collections are exported; --contacts or --notes narrows it down.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		// No selector means both.
		all := !exportContacts && !exportNotes

		if exportContacts || all {
			if err := export.WriteContacts(exportOut, assistant.Contacts.All()); err != nil {
				fatal("Failed to export contacts", err)
			}
			fmt.Printf("Exported %d contacts to %s\n", assistant.Contacts.Len(), exportOut)
		}
		if exportNotes || all {
			if err := export.WriteNotes(exportOut, assistant.Notes.All()); err != nil {
				fatal("Failed to export notes", err)
			}
			fmt.Printf("Exported %d notes to %s\n", assistant.Notes.Len(), exportOut)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Target directory for the Markdown files")
	exportCmd.Flags().BoolVar(&exportContacts, "contacts", false, "Export contacts only")
	exportCmd.Flags().BoolVar(&exportNotes, "notes", false, "Export notes only")
	exportCmd.MarkFlagRequired("out")
}
