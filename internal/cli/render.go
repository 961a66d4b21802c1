package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/config"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/app"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/environment"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/markup"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/usecase"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	PagePath    string
	Author      bool
	ContainerID string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <markup-file>",
		Short: "Render a lister block from authored markup",
		Long: `Render a category product lister block from a file holding its authored
markup ("-" reads stdin).

Endpoints come from the same configuration as the server (config.yaml, .env
or CPL_* variables). --author selects the authoring endpoints and link style.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.PagePath, "page", "/", "path of the page hosting the block")
	cmd.Flags().BoolVar(&opts.Author, "author", false, "render as in the authoring environment")
	cmd.Flags().StringVar(&opts.ContainerID, "container", "", "container id for invocation tracking")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	raw, err := readMarkup(path, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read markup", err)
	}

	block, err := markup.Parse(string(raw))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid block markup", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load configuration", err)
	}

	logger := opts.logger()
	defer func() { _ = logger.Sync() }()

	lister := app.NewLister(cfg, environment.Static(opts.Author), nil, logger)
	result, err := lister.Decorate(cmd.Context(), usecase.DecorateRequest{
		Block:       block,
		PagePath:    opts.PagePath,
		ContainerID: opts.ContainerID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return WrapExitError(ExitCommandError, "cannot render block", err)
		}
		return WrapExitError(ExitFailure, "cannot render block", err)
	}

	formatter.VerboseLog("folder=%s legacy=%v author=%v cards=%d",
		result.Context.FolderPath, result.Context.IsLegacy, result.Context.IsAuthor, len(result.Cards))
	logger.Debug("rendered block", zap.Int("cards", len(result.Cards)))

	return formatter.Block(block.Root(), result)
}

func readMarkup(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
