// Package cli implements the x2md command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"x-to-markdown/internal/adapters/fxtwitter"
	"x-to-markdown/internal/adapters/output"
	"x-to-markdown/internal/adapters/preview"
	"x-to-markdown/internal/config"
	"x-to-markdown/internal/domain"
	"x-to-markdown/internal/usecases"
	"x-to-markdown/pkg/log"
)

// ErrConflictingOutput is returned when both an output path and --dir are
// given.
var ErrConflictingOutput = errors.New("use either an output path or --dir, not both")

type options struct {
	url        string
	dir        string
	configPath string
	logLevel   string
	pretty     bool
}

// Execute builds the root command and runs it.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the x2md command.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "x2md [output.md]",
		Short: "Convert X/Twitter posts and articles to markdown",
		Long: `x2md converts a post or long-form article into markdown.

Without --url the status API JSON is read from stdin:

  curl -s https://api.fxtwitter.com/jack/status/20 | x2md
  x2md --url https://x.com/jack/status/20 post.md
  x2md --url https://x.com/user/status/123 --dir notes/`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "post URL to fetch instead of reading JSON from stdin")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "write <dir>/<slug>.md instead of stdout")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "render styled markdown to the terminal")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file (default $X2MD_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := config.Load(config.ResolvePath(opts.configPath))
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", err, opts.logLevel)
	}
	log.SetDefault(log.New(level, log.WithWriter(cmd.ErrOrStderr()), log.WithFormat(log.Text)))

	var path string
	if len(args) == 1 {
		if opts.dir != "" {
			return ErrConflictingOutput
		}
		path = args[0]
	}

	doc, err := convert(cmd.Context(), cfg, opts.url, cmd.InOrStdin())
	if err != nil {
		return err
	}

	dir := opts.dir
	if dir == "" && path == "" {
		dir = cfg.OutputDir
	}
	if path == "" && dir != "" {
		path = output.PathInDir(dir, doc.Slug)
	}

	out := cmd.OutOrStdout()
	switch {
	case path != "":
		if err := output.NewWriter().Write(path, doc.Markdown); err != nil {
			return err
		}
		log.GlobalInfo("markdown written", "path", path, "bytes", len(doc.Markdown))
		_, err = fmt.Fprintln(out, path)
		return err
	case opts.pretty:
		return preview.NewTerminal("", 0).Write(out, doc.Markdown)
	default:
		_, err = io.WriteString(out, doc.Markdown)
		return err
	}
}

// convert fetches the post at rawURL, or decodes stdin when rawURL is empty.
func convert(ctx context.Context, cfg *config.Config, rawURL string, stdin io.Reader) (*usecases.Document, error) {
	if rawURL == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return usecases.ConvertJSON(data)
	}

	username, tweetID, err := domain.ParseTweetURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, rawURL)
	}

	client := fxtwitter.NewClient(cfg.APIBaseURL, cfg.UserAgent, cfg.RequestTimeout)
	convertUC := usecases.NewConvertPostUseCase(usecases.NewFetchPostUseCase(client))
	return convertUC.Execute(ctx, tweetID, username)
}
