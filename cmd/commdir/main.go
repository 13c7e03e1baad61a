// Command commdir serves the community directory and manages its datastore.
package main

import (
	"fmt"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maloquacious/commdir/internal/config"
	"github.com/maloquacious/commdir/internal/logger"
)

var version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}

// app carries the state shared by every command. cfg and log are filled in
// by the root command's PersistentPreRunE.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	log        logger.Logger
}

func main() {
	a := &app{v: viper.New()}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "commdir: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	d := config.Default()

	rootCmd := &cobra.Command{
		Use:               "commdir",
		Short:             "Community directory server and admin CLI",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./commdir.yaml if present)")
	pf.String("db", d.DBPath, "path to the SQLite database")
	pf.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	a.bind(pf, config.KeyDBPath, "db")
	a.bind(pf, config.KeyLogLevel, "log-level")

	// serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the public and admin HTTP servers",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	sf := serveCmd.Flags()
	sf.String("host", d.Host, "public HTTP host")
	sf.Int("port", d.Port, "public HTTP port")
	sf.Int("admin-port", d.AdminPort, "admin HTTP port (JSON, loopback only, 0 disables)")
	sf.String("public", d.PublicDir, "directory for static public assets")
	sf.Duration("shutdown-timeout", d.ShutdownTimeout, "graceful shutdown timeout")
	sf.Duration("exit-after", 0, "optional runtime; if set, server exits after this duration (testing)")
	a.bind(sf, config.KeyHost, "host")
	a.bind(sf, config.KeyPort, "port")
	a.bind(sf, config.KeyAdminPort, "admin-port")
	a.bind(sf, config.KeyPublicDir, "public")
	a.bind(sf, config.KeyShutdownTimeout, "shutdown-timeout")
	a.bind(sf, config.KeyExitAfter, "exit-after")

	rootCmd.AddCommand(serveCmd, a.dbCmd(), a.panelCmd(), versionCmd())
	return rootCmd
}

// bind ties a flag to a config key. Flags only override when set.
func (a *app) bind(fs *pflag.FlagSet, key, flag string) {
	if err := a.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", flag, err))
	}
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewStdLogger(os.Stderr, level)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
