// Package cli wires configuration, logging and the account workflows into the
// foodnet command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"foodnetwork/internal/action"
	"foodnetwork/internal/api"
	"foodnetwork/internal/config"
	"foodnetwork/internal/i18n"
	"foodnetwork/internal/prompt"
	"foodnetwork/internal/styles"
	"foodnetwork/pkg/logger"
)

var version = "dev" // set by the linker

// Runtime carries the process-level collaborators of the command
type Runtime struct {
	Out       io.Writer
	Err       io.Writer
	Prompter  prompt.Prompter
	NewClient func(api.TransportConfig) (action.AccountClient, error)
}

// DefaultRuntime uses the standard streams and the HTTP account client
func DefaultRuntime() Runtime {
	return Runtime{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Prompter: prompt.Stdio(),
		NewClient: func(cfg api.TransportConfig) (action.AccountClient, error) {
			return api.NewClient(cfg)
		},
	}
}

// NewRootCmd creates the foodnet command bound to its own viper instance
func NewRootCmd(rt Runtime) *cobra.Command {
	v := viper.New()
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "foodnet",
		Short: "Register for a Food Network API key or rotate an existing one",
		Long: `foodnet talks to the Food Network account service.

Choose "register" to create an account and optionally your first API key,
or "login" to list your keys and replace the active one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Init(cfg.Log)
			i18n.Init(cfg.Locale)
			logger.Debugf("using account service at %s", cfg.API.BaseURL)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), rt, cfg)
		},
	}

	d := config.Default()
	flags := cmd.PersistentFlags()
	flags.String("api-url", d.API.BaseURL, "Account service base URL")
	flags.Bool("insecure-skip-verify", false, "Disable TLS certificate verification (development only)")
	flags.Duration("timeout", d.API.Timeout, "Timeout for each account service request")
	flags.String("log-level", d.Log.Level, "Log level (debug, info, warn, error)")
	flags.String("locale", d.Locale, "Language for prompts and messages")

	_ = v.BindPFlag("api.base_url", flags.Lookup("api-url"))
	_ = v.BindPFlag("api.insecure_skip_verify", flags.Lookup("insecure-skip-verify"))
	_ = v.BindPFlag("api.timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("locale", flags.Lookup("locale"))

	cmd.SetOut(rt.Out)
	cmd.SetErr(rt.Err)
	return cmd
}

func run(ctx context.Context, rt Runtime, cfg *config.Config) error {
	client, err := rt.NewClient(api.TransportConfig{
		BaseURL:            cfg.API.BaseURL,
		InsecureSkipVerify: cfg.API.InsecureSkipVerify,
		Timeout:            cfg.API.Timeout,
		UserAgent:          "foodnet-cli/" + version,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(rt.Out, styles.TitleStyle.Render(i18n.T("greeting")))
	if cfg.API.InsecureSkipVerify {
		fmt.Fprintln(rt.Out, styles.WarningStyle.Render(i18n.T("insecure_transport")))
	}

	register := i18n.T("option_register")
	login := i18n.T("option_login")
	choice, err := rt.Prompter.Select(i18n.T("select_action"), []string{register, login})
	if err != nil {
		return err
	}

	c := action.New(client, rt.Prompter, rt.Out)
	if choice == register {
		return c.Register(ctx)
	}
	return c.Login(ctx)
}

// Run executes the command with args and returns the process exit code.
// Errors the workflows already printed are not printed again.
func Run(ctx context.Context, rt Runtime, args []string) int {
	cmd := NewRootCmd(rt)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !action.Reported(err) {
			fmt.Fprintln(rt.Err, styles.ErrorStyle.Render(action.Message(err)))
		}
		logger.Debugf("foodnet exited with error: %v", err)
		return 1
	}
	return 0
}
