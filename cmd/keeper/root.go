package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/keeper"
)

var (
	verbose bool
	cfgFile string
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "keeper",
	Short: "A personal contact and note keeper backed by flat JSON files",
	Long: `Keeper stores contacts and free-text notes in two plain JSON files.
It offers search, edit and delete over both collections plus upcoming
birthday queries, and rewrites the files on every change.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/keeper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "",
		"data directory holding contacts.json and notes.json")

	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
}

func initConfig() {
	viper.SetDefault("data", "data")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .keeper/config.yaml (current directory)
		// 2. ~/.config/keeper/config.yaml (user config)
		if _, err := os.Stat(".keeper/config.yaml"); err == nil {
			viper.SetConfigFile(".keeper/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "keeper"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config file is fine; flag and defaults apply.
	_ = viper.ReadInConfig()
}

// openAssistant builds the assistant on the configured data directory.
func openAssistant() (*keeper.Assistant, error) {
	return keeper.Open(viper.GetString("data"), keeper.WithLogger(slog.Default()))
}
