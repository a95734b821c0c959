package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hostkit-labs/hostkit/internal/branding"
	"github.com/hostkit-labs/hostkit/internal/config"
	"github.com/spf13/cobra"
)

var configKeys = []string{
	config.KeyExeName,
	config.KeyExePath,
	config.KeyResources,
	config.KeyOutput,
	config.KeyVerbose,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write %s configuration stored at ~/%s/config.yaml.

Known keys: %s. Every key can also be set through the environment,
for example %s.`,
		branding.DisplayName(), branding.HomeDir(), strings.Join(configKeys, ", "),
		branding.EnvVar(config.KeyResources)),
}

func checkKey(key string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("unknown config key %q: expected one of %s", key, strings.Join(configKeys, ", "))
	}
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkKey(key); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
