// Command bstdemo times the ordered tree on a word list against baseline indexes.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/ordered-tree/internal/baseline"
	"github.com/g-m-twostay/ordered-tree/internal/demo"
)

const (
	cfgConfigFile = "config"
	cfgWords      = "words"
	cfgSample     = "sample"
	cfgNaive      = "naive"
	cfgSeed       = "seed"
	cfgBaselines  = "baselines"
	cfgLogLevel   = "log.level"
	cfgLogFormat  = "log.format"
)

var rootCmd = &cobra.Command{
	Use:          "bstdemo",
	Short:        "time the ordered tree on a word list",
	Long:         fmt.Sprintf("time the ordered tree on a word list\n\nbaselines: %s", strings.Join(baseline.Names(), ", ")),
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: run,
}

// registerFlags registers the configuration flags with the provided command.
func registerFlags(cmd *cobra.Command) {
	def := demo.DefaultConfig()
	cmd.Flags().String(cfgConfigFile, "", "configuration file")
	cmd.Flags().String(cfgWords, "words.txt", "newline delimited word list")
	cmd.Flags().Int(cfgSample, def.Sample, "number of words looked up in each search phase")
	cmd.Flags().Int(cfgNaive, def.Naive, "number of leading words added in file order")
	cmd.Flags().Int64(cfgSeed, def.Seed, "random seed, 0 uses the current time")
	cmd.Flags().StringSlice(cfgBaselines, def.Baselines, "baseline indexes to compare against")
	cmd.Flags().String(cfgLogLevel, "info", "log level")
	cmd.Flags().String(cfgLogFormat, "text", "log format (text, json)")

	for _, v := range []string{
		cfgConfigFile,
		cfgWords,
		cfgSample,
		cfgNaive,
		cfgSeed,
		cfgBaselines,
		cfgLogLevel,
		cfgLogFormat,
	} {
		viper.BindPFlag(v, cmd.Flags().Lookup(v)) // nolint: errcheck
	}
}

func initConfig() error {
	viper.SetEnvPrefix("bstdemo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if f := viper.GetString(cfgConfigFile); f != "" {
		viper.SetConfigFile(f)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", f, err)
		}
	}
	return nil
}

func newLogger() (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(viper.GetString(cfgLogLevel))
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	switch f := viper.GetString(cfgLogFormat); f {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", f)
	}
	return logger, nil
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg := demo.Config{
		Words:     viper.GetString(cfgWords),
		Sample:    viper.GetInt(cfgSample),
		Naive:     viper.GetInt(cfgNaive),
		Seed:      viper.GetInt64(cfgSeed),
		Baselines: viper.GetStringSlice(cfgBaselines),
	}
	logger.WithFields(logrus.Fields{
		"words":     cfg.Words,
		"sample":    cfg.Sample,
		"naive":     cfg.Naive,
		"baselines": cfg.Baselines,
	}).Debug("starting")
	rep, err := demo.NewRunner(cfg, logger).RunFile()
	if err != nil {
		return err
	}
	return rep.Print(cmd.OutOrStdout())
}

func init() {
	registerFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
