package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"vincit.fi/image-gallery/backend"
	"vincit.fi/image-gallery/common"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/ui/console"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		seedPath   string
		scriptPath string
		logLevel   string
		queueSize  int
	)

	root := &cobra.Command{
		Use:   "image-gallery",
		Short: "Select, reorder and delete gallery images from the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := common.NewParams(seedPath, scriptPath, logLevel, queueSize)
			return run(params, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.Flags().StringVar(&seedPath, "seed", "", "TOML file with the initial gallery")
	root.Flags().StringVar(&scriptPath, "script", "", "File with one gallery event per line (default stdin)")
	root.Flags().StringVar(&logLevel, "logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	root.Flags().IntVar(&queueSize, "queueSize", common.DefaultQueueSize, "Event bus queue size")
	return root
}

// run keeps stdout for the gallery and sends every log line to stderr.
func run(params *common.Params, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	logger.InitializeWithWriters(logger.StringToLogLevel(params.LogLevel()), stderr, stderr)

	brokers := backend.InitializeEventBrokers(params.QueueSize())
	defer brokers.Close()

	services, err := backend.InitializeServices(params, brokers)
	if err != nil {
		logger.Error.Print("Could not initialize gallery ", err)
		return err
	}
	defer services.Close()

	in := stdin
	if params.ScriptPath() != "" {
		file, err := os.Open(params.ScriptPath())
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	gui := console.NewUi(brokers.Broker, in, stdout)
	backend.ConnectGui(brokers, gui)
	return gui.Run()
}
