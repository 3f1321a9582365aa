package main

import (
	"fmt"
	"io"

	"github.com/0xPexy/deployconf/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app is built once per invocation in PersistentPreRunE and handed to every
// subcommand.
type app struct {
	envFile string
	cfg     config.AppConfig
	rt      config.RuntimeConfig
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "deployconf",
		Short: "Resolve contract toolchain settings from the environment",
		Long: `deployconf resolves NETWORK, SEPOLIA_URL and SEPOLIA_KEY into the
configuration consumed by the contract build tool.

Unset variables fall back to defaults; resolution never fails. Use
"deployconf check" for diagnostics.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "",
		"dotenv file to load before resolving (default $"+config.EnvFile+" or "+config.DefaultEnvFile+")")

	root.AddCommand(
		newRenderCmd(a),
		newShowCmd(a),
		newCheckCmd(a),
		newAccountsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads the dotenv file before anything else reads the environment, so
// it can also carry the logging settings. A bad file is reported through the
// configured logger once that exists.
func (a *app) init(logOut io.Writer) error {
	envFile := a.envFile
	if envFile == "" {
		envFile = config.EnvFilePath()
	}
	cfg, envErr := config.LoadWithEnvFile(envFile)
	a.cfg = cfg
	a.rt = config.LoadRuntime()

	logger, err := newLogger(a.rt, logOut)
	if err != nil {
		return err
	}
	a.log = logger
	if envErr != nil {
		a.log.WithError(envErr).Warn("failed to load env file")
	}
	a.log.WithFields(logrus.Fields{
		"defaultNetwork": a.cfg.DefaultNetwork(),
		"networks":       a.cfg.NetworkNames(),
	}).Debug("configuration resolved")
	return nil
}

func newLogger(rt config.RuntimeConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(rt.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	switch rt.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: rt.Pretty})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", rt.LogFormat)
	}
	return logger, nil
}
