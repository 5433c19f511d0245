// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "hotspot-cli" implements the hotspot explorer report interface.
package cmd

import (
	"os"
	"strings"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tedder/helium-block-scraper/client"
)

const (
	requestTimeout = 30 * time.Second
	envPrefix      = "hotspot"
)

var (
	configFile   string
	uri          string
	directoryURI string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:               "hotspot-cli",
		Short:             "Helium hotspot explorer CLI",
		SuggestFor:        []string{"hotspot-cli", "hotspotcli", "hotspotctl"},
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		activityCmd,
		nearbyCmd,
		resolveCmd,
		versionCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"config file path (yaml, json or toml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		client.DefaultEndpoint,
		"explorer API endpoint",
	)
	rootCmd.PersistentFlags().StringVar(
		&directoryURI,
		"directory-endpoint",
		client.DefaultDirectoryEndpoint,
		"hotspot directory endpoint",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)

	for _, name := range []string{"endpoint", "directory-endpoint", "verbose"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig settles every setting from flags, HOTSPOT_* environment
// variables and the optional config file, in that order of precedence.
func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	uri = viper.GetString("endpoint")
	directoryURI = viper.GetString("directory-endpoint")
	verbose = viper.GetBool("verbose")

	lvl := log.LvlInfo
	if verbose {
		lvl = log.LvlDebug
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	log.Debug("loaded config", "endpoint", uri, "directory", directoryURI, "config", viper.ConfigFileUsed())
	return nil
}

func newClient() client.Client {
	return client.New(uri, directoryURI, requestTimeout)
}

func Execute() error {
	return rootCmd.Execute()
}
