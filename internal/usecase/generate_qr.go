package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/ports"
)

var yesNoChoices = []string{"y", "yes", "n", "no"}

// Input is the raw invocation as parsed from the command line.
type Input struct {
	Text      string
	Directory string
	FileName  string

	// Format skips the format prompt when set.
	Format domain.Format
	// AssumeYes answers yes to directory creation and overwrite prompts.
	AssumeYes bool
}

// Result describes the file that was written.
type Result struct {
	Path   string
	Format domain.Format
	// Art is the saved symbol as terminal text.
	Art string
}

type GenerateQR struct {
	prompter ports.Prompter
	dirs     ports.DirectoryStore
	images   ports.ImageStore
	encoder  ports.Encoder
	progress ports.ProgressIndicator
	notify   ports.Notifier

	createPolicy domain.CreatePolicy
	log          *slog.Logger
}

type GenerateOption func(*GenerateQR)

func WithCreatePolicy(p domain.CreatePolicy) GenerateOption {
	return func(uc *GenerateQR) {
		if p != "" {
			uc.createPolicy = p
		}
	}
}

func WithProgress(p ports.ProgressIndicator) GenerateOption {
	return func(uc *GenerateQR) {
		if p != nil {
			uc.progress = p
		}
	}
}

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateQR) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewGenerateQR(p ports.Prompter, ds ports.DirectoryStore, is ports.ImageStore, enc ports.Encoder, n ports.Notifier, opts ...GenerateOption) *GenerateQR {
	uc := &GenerateQR{
		prompter:     p,
		dirs:         ds,
		images:       is,
		encoder:      enc,
		notify:       n,
		createPolicy: domain.CreateAsk,
		log:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the whole workflow: ensure the directory, pick a format,
// encode once, resolve overwrite, write, then show progress.
func (uc *GenerateQR) Execute(ctx context.Context, in Input) (Result, error) {
	dir, err := domain.NormalizeDirectory(in.Directory)
	if err != nil {
		return Result{}, err
	}
	baseName, err := domain.StripExtension(in.FileName)
	if err != nil {
		return Result{}, err
	}

	if err := uc.ensureDirectory(ctx, dir, in.AssumeYes); err != nil {
		return Result{}, err
	}

	format := in.Format
	if format == domain.FormatUnset {
		format, err = uc.chooseFormat(ctx)
		if err != nil {
			return Result{}, err
		}
	}

	req, err := domain.NewInvocationRequest(in.Text, dir, baseName, format)
	if err != nil {
		return Result{}, err
	}
	path := req.Path()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	qr, err := uc.encoder.Encode(req.Text)
	if err != nil {
		return Result{}, &domain.OpError{Op: "generate.encode", Kind: domain.KindEncode, Err: err}
	}
	uc.log.Info("qr.encoded", "bytes", len(req.Text), "format", format.String())

	if err := uc.resolveOverwrite(ctx, path, in.AssumeYes); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	uc.notify.Info("Saving file...")
	if err := uc.images.Save(path, qr.Image, format); err != nil {
		uc.notify.Warn("QR code failed to save. Please try again.")
		return Result{}, err
	}
	uc.log.Info("file.written", "path", path)

	if uc.progress != nil {
		if perr := uc.progress.Run(ctx); perr != nil {
			uc.log.Warn("progress.failed", "err", perr.Error())
		}
	}

	uc.notify.Success(fmt.Sprintf("QR code saved to: %s", path))
	return Result{Path: path, Format: format, Art: qr.Art}, nil
}

func (uc *GenerateQR) ensureDirectory(ctx context.Context, dir string, assumeYes bool) error {
	ok, err := uc.dirs.Exists(dir)
	if err != nil {
		return err
	}
	if ok {
		uc.notify.Info(fmt.Sprintf("Found directory %s", dir))
		return nil
	}

	uc.log.Info("dir.missing", "path", dir)
	uc.notify.Warn(fmt.Sprintf("Could not find the directory %s", dir))

	if uc.createPolicy != domain.CreateAlways && !assumeYes {
		yes, err := uc.confirm(ctx, "Would you like to create it? (y/n) ")
		if err != nil {
			return err
		}
		if !yes {
			uc.notify.Info("You chose not to create the directory. Exiting...")
			return &domain.OpError{Op: "generate.ensure_dir", Kind: domain.KindRefused, Path: dir, Err: domain.ErrRefused}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	uc.notify.Info("Attempting to create directory...")
	if err := uc.dirs.Create(dir); err != nil {
		uc.notify.Warn(fmt.Sprintf("Failed to create %s", dir))
		return err
	}
	uc.log.Info("dir.created", "path", dir)
	uc.notify.Info(fmt.Sprintf("Created %s", dir))
	return nil
}

func (uc *GenerateQR) chooseFormat(ctx context.Context) (domain.Format, error) {
	choice, err := uc.prompter.Choose(ctx, "Would you like to save the QR image as a (1) .png or (2) .jpg? ", domain.FormatChoices)
	if err != nil {
		return domain.FormatUnset, err
	}
	if err := ctx.Err(); err != nil {
		return domain.FormatUnset, err
	}
	f, err := domain.FormatFromChoice(choice)
	if err != nil {
		return domain.FormatUnset, &domain.OpError{Op: "generate.format", Kind: domain.KindUsage, Err: err}
	}
	return f, nil
}

func (uc *GenerateQR) resolveOverwrite(ctx context.Context, path string, assumeYes bool) error {
	exists, err := uc.images.Exists(path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	uc.log.Info("file.exists", "path", path)
	uc.notify.Warn(fmt.Sprintf("%s already exists.", path))
	if assumeYes {
		return nil
	}

	yes, err := uc.confirm(ctx, "Would you like to overwrite the file? (y/n) ")
	if err != nil {
		return err
	}
	if !yes {
		uc.notify.Info("You chose not to overwrite the file. Exiting...")
		return &domain.OpError{Op: "generate.overwrite", Kind: domain.KindRefused, Path: path, Err: domain.ErrRefused}
	}
	return nil
}

func (uc *GenerateQR) confirm(ctx context.Context, question string) (bool, error) {
	ans, err := uc.prompter.Choose(ctx, question, yesNoChoices)
	if err != nil {
		return false, err
	}
	// An answer racing a cancellation does not count.
	if err := ctx.Err(); err != nil {
		return false, err
	}
	switch ans {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.New("unexpected answer " + ans)
	}
}
