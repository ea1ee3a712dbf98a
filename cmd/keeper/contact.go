package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper/pkg/core"
)

var (
	contactName     string
	contactAddress  string
	contactPhone    string
	contactEmail    string
	contactBirthday string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		contact := core.Contact{
			Name:     contactName,
			Address:  contactAddress,
			Phone:    contactPhone,
			Email:    contactEmail,
			Birthday: contactBirthday,
		}
		if err := assistant.Contacts.Add(context.Background(), contact); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Contact added successfully.")
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}
		printContacts(assistant.Contacts.All())
	},
}

var contactSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search contacts by name, address, phone or email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		results := assistant.Contacts.Search(args[0])
		if len(results) == 0 {
			fmt.Println("No contacts found.")
			return
		}
		printContacts(results)
	},
}

var contactEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit the first contact matching the given name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		// Only flags the user actually set end up in the patch; everything
		// else keeps its current value.
		var patch core.ContactPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &contactName
		}
		if cmd.Flags().Changed("address") {
			patch.Address = &contactAddress
		}
		if cmd.Flags().Changed("phone") {
			patch.Phone = &contactPhone
		}
		if cmd.Flags().Changed("email") {
			patch.Email = &contactEmail
		}
		if cmd.Flags().Changed("birthday") {
			patch.Birthday = &contactBirthday
		}

		if err := assistant.Contacts.Edit(context.Background(), args[0], patch); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Contact updated.")
	},
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete every contact matching the given name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assistant, err := openAssistant()
		if err != nil {
			fatal("Failed to open data directory", err)
		}

		if err := assistant.Contacts.Delete(context.Background(), args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("Contact deleted.")
	},
}

func printContacts(contacts []core.Contact) {
	for _, c := range contacts {
		fmt.Printf("Name: %s, Address: %s, Phone: %s, Email: %s, Birthday: %s\n",
			c.Name, c.Address, c.Phone, c.Email, c.Birthday)
	}
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.AddCommand(contactAddCmd, contactListCmd, contactSearchCmd, contactEditCmd, contactDeleteCmd)

	for _, cmd := range []*cobra.Command{contactAddCmd, contactEditCmd} {
		cmd.Flags().StringVar(&contactName, "name", "", "Contact name")
		cmd.Flags().StringVar(&contactAddress, "address", "", "Postal address")
		cmd.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
		cmd.Flags().StringVar(&contactEmail, "email", "", "Email address")
		cmd.Flags().StringVar(&contactBirthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	}
	contactAddCmd.MarkFlagRequired("name")
}
