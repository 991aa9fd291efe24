package main

import (
	"fmt"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/polylattice/config"
	"github.com/katalvlaran/polylattice/store"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     log15.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:           "hasse",
		Short:         "Build, store and draw Hasse diagrams of face lattices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: debug, info, warn, error or crit")
	pf.String("store", "polylattice.db", "lattice store directory")
	pf.Bool("in-memory", false, "keep the lattice store in memory")
	a.bind(pf, map[string]string{
		"log_level":       "log-level",
		"store.path":      "store",
		"store.in_memory": "in-memory",
	})

	root.AddCommand(
		newBuildCmd(a),
		newBatchCmd(a),
		newHungarianCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
	)

	return root
}

// bind ties configuration keys to flags. Flags take precedence over the
// environment and the config file only when set explicitly.
func (a *app) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind %s to --%s: %v", key, name, err))
		}
	}
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if f := cmd.Flags().Lookup("no-artificial"); f != nil && f.Changed {
		a.v.Set("artificial_node", false)
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	lvl, err := log15.LvlFromString(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log15.New("cmd", "hasse")
	a.log.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(cmd.ErrOrStderr(), log15.LogfmtFormat())))
	a.log.Debug("configuration loaded", "file", a.cfgFile, "store", cfg.Store.Path, "workers", cfg.Workers)

	return nil
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(store.Config{
		Path:       a.cfg.Store.Path,
		InMemory:   a.cfg.Store.InMemory,
		SyncWrites: a.cfg.Store.SyncWrites,
		Logger:     a.log.New("module", "badger"),
	})
}
