package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper/pkg/core"
)

var (
	noteText    string
	noteTags    []string
	searchByTag bool
	textOnly    bool
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a note with optional tags",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		if err := assistant.Notes.Add(context.Background(), args[0], noteTags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Note added with tags.")
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes with their indices",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}
		printNotes(assistant.Notes.All(), true)
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by text and tags",
	Long: `Search notes. By default the query matches the note text or any tag
as a substring. With --tag the query must equal a tag exactly; with
--text tags are ignored.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		var results []core.Note
		switch {
		case searchByTag:
			results = assistant.Notes.SearchTag(args[0])
		case textOnly:
			results = assistant.Notes.SearchText(args[0])
		default:
			results = assistant.Notes.Search(args[0])
		}

		if len(results) == 0 {
			fmt.Println("No notes found.")
			return
		}
		printNotes(results, false)
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [index]",
	Short: "Edit the note at the given index",
	Long: `Edit replaces the text of the note at the given index (as shown by
'note list'). Tags are replaced only when --tags is provided; otherwise
the existing tags are kept.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("Invalid index", err)
		}

		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		if err := assistant.Notes.Edit(context.Background(), index, noteText, noteTags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Note updated.")
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [index]",
	Short: "Delete the note at the given index",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("Invalid index", err)
		}

		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		if err := assistant.Notes.Delete(context.Background(), index); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Note deleted.")
	},
}

func printNotes(notes []core.Note, withIndex bool) {
	for i, n := range notes {
		if withIndex {
			fmt.Printf("%d: %s [%s]\n", i, n.Text, strings.Join(n.Tags, ", "))
		} else {
			fmt.Printf("Note: %s, Tags: %s\n", n.Text, strings.Join(n.Tags, ", "))
		}
	}
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteSearchCmd, noteEditCmd, noteDeleteCmd)

	noteAddCmd.Flags().StringSliceVar(&noteTags, "tags", nil, "Comma-separated tags")

	noteSearchCmd.Flags().BoolVar(&searchByTag, "tag", false, "Match the query against tags exactly")
	noteSearchCmd.Flags().BoolVar(&textOnly, "text", false, "Match the query against text only")
	noteSearchCmd.MarkFlagsMutuallyExclusive("tag", "text")

	noteEditCmd.Flags().StringVar(&noteText, "text", "", "New note text")
	noteEditCmd.Flags().StringSliceVar(&noteTags, "tags", nil, "Replacement tags (omit to keep current)")
	noteEditCmd.MarkFlagRequired("text")
}
