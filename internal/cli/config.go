package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "startupscan")
	dataDir := filepath.Join(home, ".local", "share", "startupscan")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'startupscan config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Adjust the keyword dictionary in the config if needed")
	fmt.Println("  2. Run 'startupscan ingest <file.csv>' to score an extract")
	fmt.Println("  3. Run 'startupscan review' to label the flagged companies")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'startupscan config init' to create one.")
			fmt.Println("Built-in defaults are used until a config file exists.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# startupscan configuration

[database]
path = "~/.local/share/startupscan/startupscan.db"

[review]
# Records scoring above the threshold need manual review; everything at or
# below it is auto-labeled No.
default_threshold = 0.0

# Added to each matching keyword weight when you confirm a startup.
learning_rate = 0.1

[scoring]
# Each negative keyword found in a description subtracts this much.
negative_penalty = 5.0

# Score assigned when the company name contains a disqualifying token.
veto_score = -100.0

disqualifying_names = ["Europe", "Consulting"]

negative_keywords = [
    "Wartung", "Consulting", "Beratungstätigkeiten", "jeglicher Art",
    "Elektrodienstleistungen", "Online-Kurse", "Marketingkommunikation",
    "Werbedienstleistungen", "Unternehmensberatung", "Agenturleistungen",
    "Erbringung", "Training", "Kulturorganisationen", "Schmuck", "Accessoires",
    "E-Books", "Vertriebs-Einheit", "Coachings", "Coaching",
]

# The base keyword dictionary seeds the persistent weight table on first run.
# Leave this section out to use the built-in dictionary.
#
# [scoring.base_keywords]
# "SaaS" = 2.0
# "Blockchain" = 2.0
# "Software" = 1.0
`
