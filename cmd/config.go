package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"leakjar-cli/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure LeakJar CLI settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set the API key (prompts without echo when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			var err error
			if key, err = promptKey(cmd); err != nil {
				return err
			}
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return errors.New("API key must not be empty")
		}
		if err := config.SetAPIKey(key); err != nil {
			return fmt.Errorf("setting API key: %w", err)
		}
		printLine(cmd, "API key set successfully.")
		return nil
	},
}

var getKeyCmd = &cobra.Command{
	Use:   "get-key",
	Short: "Show the current API key (masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := config.GetAPIKey()
		if key == "" {
			printLine(cmd, "API key is not set.")
			return nil
		}
		printLine(cmd, "Current API key: %s", config.MaskKey(key))
		return nil
	},
}

var setURLCmd = &cobra.Command{
	Use:   "set-url [url]",
	Short: "Set the API base URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := url.Parse(args[0])
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base URL %q", args[0])
		}
		if err := config.SetBaseURL(strings.TrimRight(args[0], "/")); err != nil {
			return fmt.Errorf("setting base URL: %w", err)
		}
		printLine(cmd, "Base URL set successfully.")
		return nil
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Load()
		key := "(not set)"
		if s.APIKey != "" {
			key = config.MaskKey(s.APIKey)
		}
		file := viper.ConfigFileUsed()
		if file == "" {
			file = "(none)"
		}

		printLine(cmd, "Config file: %s", file)
		printLine(cmd, "API key:     %s", key)
		printLine(cmd, "Base URL:    %s", s.BaseURL)
		printLine(cmd, "Timeout:     %s", s.Timeout)
		printLine(cmd, "Page delay:  %s", s.PageDelay)
		printLine(cmd, "Log level:   %s", s.LogLevel)
		return nil
	},
}

func promptKey(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no key given and stdin is not a terminal")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Enter API key: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	return string(raw), nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(getKeyCmd)
	configCmd.AddCommand(setURLCmd)
	configCmd.AddCommand(showConfigCmd)
}
