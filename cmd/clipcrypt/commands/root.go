package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clipcrypt/internal/app"
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCmd(app.StdStreams()).Execute()
}

// NewRootCmd builds the command tree; the session reads and writes streams.
func NewRootCmd(streams app.Streams) *cobra.Command {
	var (
		cfgFile string
		cfg     app.Config
	)
	v := app.NewViper()

	root := &cobra.Command{
		Use:   "clipcrypt",
		Short: "Encrypted messaging over the clipboard",
		Long: "clipcrypt generates a one-off X448 key pair, exchanges public keys through\n" +
			"the clipboard and then encrypts and decrypts short messages with the\n" +
			"shared AES-256 key. Keys are never stored; each run is a new session.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig(v, cfgFile)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(cfg, streams)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Session.Run(ctx)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.String("clipboard", "auto", "clipboard backend: auto, system, osc52 or none")
	flags.String("log-level", "warn", "log level: debug, info, warn, error or disabled")
	flags.Bool("no-color", false, "disable colored output")

	_ = v.BindPFlag(app.KeyClipboard, flags.Lookup("clipboard"))
	_ = v.BindPFlag(app.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(app.KeyNoColor, flags.Lookup("no-color"))

	root.AddCommand(fingerprintCmd())
	return root
}
