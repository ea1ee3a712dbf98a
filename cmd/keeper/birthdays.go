package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	birthdayDays int
	birthdayAll  bool
)

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Show upcoming birthdays",
	Long: `Show contacts whose birthday falls within the next --days days.
With --all, every contact is listed instead, sorted by birthday.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		if birthdayAll {
			sorted, err := assistant.Contacts.BirthdaysSorted()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, c := range sorted {
				fmt.Printf("Name: %s, Birthday: %s\n", c.Name, c.Birthday)
			}
			return
		}

		upcoming, err := assistant.Contacts.UpcomingBirthdays(birthdayDays)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(upcoming) == 0 {
			fmt.Printf("No birthdays in the next %d days.\n", birthdayDays)
			return
		}
		for _, c := range upcoming {
			fmt.Printf("%s has a birthday on %s.\n", c.Name, c.Birthday)
		}
	},
}

func init() {
	rootCmd.AddCommand(birthdaysCmd)
	birthdaysCmd.Flags().IntVar(&birthdayDays, "days", 7, "Size of the upcoming window in days")
	birthdaysCmd.Flags().BoolVar(&birthdayAll, "all", false, "List every contact sorted by birthday")
}
