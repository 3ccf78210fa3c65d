package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"postwizard/internal/campaign"
	"postwizard/internal/config"
	"postwizard/internal/logging"
	"postwizard/internal/route"
	"postwizard/internal/trace"
	"postwizard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// openOptions are the flags of the open command.
type openOptions struct {
	configPath string
	protect    bool
	subject    string
	body       string
	bodyFile   string
	replyTo    string
}

// openFunc runs the wizard for the open command.
type openFunc func(ctx context.Context, out io.Writer, path string, opts *openOptions) error

func rootCmd() *cobra.Command {
	return newRootCmd(runOpen)
}

func newRootCmd(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "postwizard",
		Short:        "Create campaigns from the terminal",
		SilenceUsage: true,
	}
	cmd.AddCommand(openCmd(open))
	return cmd
}

func openCmd(open openFunc) *cobra.Command {
	opts := &openOptions{}
	cmd := &cobra.Command{
		Use:   "open [path]",
		Short: "Open the wizard at a campaign route",
		Long: `Open the campaign creation wizard.

path is the wizard route, e.g. /campaigns/42/create. A path that does not
carry a campaign id still opens the wizard, but saving is refused.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return open(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.BoolVar(&opts.protect, "protect", false, "campaign sends password protected emails")
	f.StringVar(&opts.subject, "subject", "", "initial subject")
	f.StringVar(&opts.body, "body", "", "initial body; <br> markers become newlines")
	f.StringVar(&opts.bodyFile, "body-file", "", "read the initial body from a file")
	f.StringVar(&opts.replyTo, "reply-to", "", "initial reply-to address")
	cmd.MarkFlagsMutuallyExclusive("body", "body-file")
	return cmd
}

func runOpen(ctx context.Context, out io.Writer, path string, opts *openOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogVerbosity)
	if err != nil {
		return err
	}
	defer logger.Close()

	tp, err := trace.Setup(ctx, cfg.Trace.Endpoint, cfg.Trace.ServiceName)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "trace shutdown")
		}
	}()

	client := campaign.NewClient(cfg.APIURL,
		campaign.WithToken(cfg.APIToken),
		campaign.WithTimeout(cfg.HTTPTimeout),
		campaign.WithLogger(logger.WithName("campaign")),
		campaign.WithTracerProvider(tp),
	)

	props, err := wizardProps(path, opts)
	if err != nil {
		return err
	}
	props.Saver = client
	props.Log = logger.Logger
	logger.Info("opening wizard", "path", path, "campaign", props.Params.Get("id"), "protect", props.Protect)

	w := ui.NewWizard(ctx, props)
	p := tea.NewProgram(w.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	if res, ok := w.Result(); ok {
		return writeResult(out, res)
	}
	return nil
}

// wizardProps builds the wizard's starting values from the route and flags.
func wizardProps(path string, opts *openOptions) (ui.WizardProps, error) {
	params, ok := route.Match(route.CampaignCreate, path)
	if !ok {
		params = route.Params{}
	}

	body := opts.body
	if opts.bodyFile != "" {
		data, err := os.ReadFile(opts.bodyFile)
		if err != nil {
			return ui.WizardProps{}, fmt.Errorf("read body file: %w", err)
		}
		body = string(data)
	}

	var replyTo *string
	if opts.replyTo != "" {
		r := opts.replyTo
		replyTo = &r
	}

	return ui.WizardProps{
		Params:  params,
		Protect: opts.protect,
		Subject: opts.subject,
		Body:    body,
		ReplyTo: replyTo,
	}, nil
}

// savedTemplate is the YAML printed after a successful save.
type savedTemplate struct {
	Subject       string   `yaml:"subject"`
	Body          string   `yaml:"body"`
	ReplyTo       *string  `yaml:"reply_to,omitempty"`
	Params        []string `yaml:"params"`
	NumRecipients int      `yaml:"num_recipients"`
}

func writeResult(out io.Writer, res ui.TemplateChanges) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(savedTemplate{
		Subject:       res.Subject,
		Body:          res.Body,
		ReplyTo:       res.ReplyTo,
		Params:        res.Params,
		NumRecipients: res.NumRecipients,
	}); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return enc.Close()
}
