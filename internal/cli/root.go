package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/clay-k0/QR/internal/buildinfo"
	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/infra/config"
	"github.com/clay-k0/QR/internal/infra/consoleprompt"
	"github.com/clay-k0/QR/internal/infra/fsstore"
	"github.com/clay-k0/QR/internal/infra/logger"
	"github.com/clay-k0/QR/internal/infra/qrencoder"
	"github.com/clay-k0/QR/internal/ui/console"
	"github.com/clay-k0/QR/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs())
	stop()
	os.Exit(code)
}

// run executes the command and maps the outcome to a process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) int {
	cmd := newRootCmd(stdin, stdout, fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if domain.IsKind(err, domain.KindUsage) {
		fmt.Fprintf(stderr, "Error: %s\n\n%s", userMessage(err), cmd.UsageString())
	} else if !domain.IsKind(err, domain.KindRefused) {
		console.NewReporter(stderr).Error(userMessage(err))
	}
	return exitCode(err)
}

type options struct {
	format     string
	assumeYes  bool
	configPath string
	debug      bool
	preview    bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer, fs afero.Fs) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "qr <text> <directory> <file_name>",
		Short: "Generate a QR code image and save it as PNG or JPEG",
		Long: `Generate a QR code for <text> and save it to <directory>/<file_name>.<ext>.

Any extension on <file_name> is replaced by the one for the chosen format.
Missing directories and existing files are confirmed interactively.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(c, args); err != nil {
				return domain.UsageError("cli.args", err)
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return generate(c.Context(), opts, args, stdin, stdout, c.ErrOrStderr(), fs)
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.UsageError("cli.flags", err)
	})

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "", "Image format: png|jpg (skips the format prompt)")
	f.BoolVarP(&opts.assumeYes, "yes", "y", false, "Create missing directories and overwrite existing files without asking")
	f.StringVar(&opts.configPath, "config", "", "Config file (default <user config dir>/qr/config.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "Enable verbose logging")
	f.BoolVar(&opts.preview, "preview", false, "Print the QR code to the terminal after saving")
	return cmd
}

func generate(ctx context.Context, opts options, args []string, stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) error {
	format := domain.FormatUnset
	if opts.format != "" {
		f, err := domain.ParseFormat(opts.format)
		if err != nil {
			return domain.UsageError("cli.format", err)
		}
		format = f
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	cleanup, _ := logger.Setup(logger.Config{
		Dir:   cfg.Logging.Dir,
		Debug: opts.debug || cfg.Logging.Debug,
	})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}
	log := logger.L()
	if opts.debug {
		if p := logger.Path(); p != "" {
			fmt.Fprintf(stderr, "Debug log: %s\n", p)
		}
	}

	encoder := qrencoder.New(
		qrencoder.WithSize(cfg.Image.Size),
		qrencoder.WithRecovery(cfg.Image.Recovery),
	)

	uc := usecase.NewGenerateQR(
		consoleprompt.New(stdin, stdout),
		fsstore.NewDirectories(fs),
		fsstore.NewImages(fs, fsstore.WithJPEGQuality(cfg.Image.JPEGQuality)),
		encoder,
		console.NewReporter(stdout),
		usecase.WithCreatePolicy(cfg.Directories.Create),
		usecase.WithProgress(console.NewIndicator(stdout, cfg.Progress, log)),
		usecase.WithLogger(log),
	)

	text, dir, name := args[0], args[1], args[2]
	res, err := uc.Execute(ctx, usecase.Input{
		Text:      text,
		Directory: dir,
		FileName:  name,
		Format:    format,
		AssumeYes: opts.assumeYes,
	})
	if err != nil {
		log.Error("generate.failed", "err", err.Error(), "kind", string(domain.KindOf(err)))
		return err
	}

	if opts.preview {
		fmt.Fprintf(stdout, "\n%s", res.Art)
	}

	log.Info("generate.done", "path", res.Path, "format", res.Format.String())
	return nil
}
