/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnplants/internal/iofs"
	"github.com/gnames/gnplants/internal/iologger"
	app "github.com/gnames/gnplants/pkg"
	"github.com/gnames/gnplants/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnplants",
		Short:   "Imports plant ranges and exports them to Gallformers",
		Long: `GNplants collects geographic ranges of host plants for the
Gallformers database.

The tool provides these steps:
  - create: create the plants database schema
  - import usda: import USDA PLANTS state checklists
  - import vascan: download distributions of hosts from VASCAN
  - export usda: match hosts to USDA plants and add their regions
  - export vascan: add VASCAN distributions to host ranges
  - parse: parse USDA scientific names

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNPLANTS_*)
  3. Config file (~/.config/gnplants/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (gallformers.driver becomes
  GNPLANTS_GALLFORMERS_DRIVER).

  Examples:
    GNPLANTS_PLANTS_DB_PATH         plants SQLite file
    GNPLANTS_GALLFORMERS_DRIVER     sqlite or postgres
    GNPLANTS_GALLFORMERS_PATH       Gallformers SQLite file
    GNPLANTS_GALLFORMERS_HOST       PostgreSQL host
    GNPLANTS_USDA_DATA_DIR          directory with USDA checklists
    GNPLANTS_LOG_LEVEL              log level (debug/info/warn/error)

  See 'go doc github.com/gnames/gnplants/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnplants version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnplants")

	rootCmd.PersistentFlags().IntP("jobs", "j", 0,
		"number of concurrent workers")
	rootCmd.PersistentFlags().String("plants-db", "",
		"path to the plants SQLite database")
	rootCmd.PersistentFlags().String("gf-driver", "",
		"Gallformers database driver (sqlite or postgres)")
	rootCmd.PersistentFlags().String("gf-path", "",
		"path to the Gallformers SQLite database")

	rootCmd.AddCommand(
		getCreateCmd(),
		getImportCmd(),
		getExportCmd(),
		getParseCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureRegionsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	for _, f := range []funcFlag{jobsFlag, plantsDBFlag, gfDriverFlag, gfPathFlag} {
		f(cmd)
	}
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping the log of
	// the bootstrap.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.CommandPath(),
	)
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNPLANTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Plants database
	v.BindEnv("plants_db.path", "GNPLANTS_PLANTS_DB_PATH")

	// Gallformers database
	v.BindEnv("gallformers.driver", "GNPLANTS_GALLFORMERS_DRIVER")
	v.BindEnv("gallformers.path", "GNPLANTS_GALLFORMERS_PATH")
	v.BindEnv("gallformers.host", "GNPLANTS_GALLFORMERS_HOST")
	v.BindEnv("gallformers.port", "GNPLANTS_GALLFORMERS_PORT")
	v.BindEnv("gallformers.user", "GNPLANTS_GALLFORMERS_USER")
	v.BindEnv("gallformers.password", "GNPLANTS_GALLFORMERS_PASSWORD")
	v.BindEnv("gallformers.database", "GNPLANTS_GALLFORMERS_DATABASE")
	v.BindEnv("gallformers.ssl_mode", "GNPLANTS_GALLFORMERS_SSL_MODE")

	// USDA checklists
	v.BindEnv("usda.data_dir", "GNPLANTS_USDA_DATA_DIR")
	v.BindEnv("usda.encoding", "GNPLANTS_USDA_ENCODING")

	// VASCAN API
	v.BindEnv("vascan.url", "GNPLANTS_VASCAN_URL")
	v.BindEnv("vascan.requests_per_second", "GNPLANTS_VASCAN_REQUESTS_PER_SECOND")
	v.BindEnv("vascan.timeout", "GNPLANTS_VASCAN_TIMEOUT")

	// Log configuration
	v.BindEnv("log.level", "GNPLANTS_LOG_LEVEL")
	v.BindEnv("log.format", "GNPLANTS_LOG_FORMAT")
	v.BindEnv("log.destination", "GNPLANTS_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNPLANTS_JOBS_NUMBER")

	v.AutomaticEnv()
}
