package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration (keeps any existing file as .bak)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := configPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.SaveAtomic(path, config.Default()); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a configuration file and print its problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := configPath()
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s does not exist (run \"enricher config init\")", path)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		_, v := config.NormalizeAndValidate(cfg)
		for _, w := range v.Warnings {
			fmt.Println("warning:", w)
		}
		if err := v.Err(); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
