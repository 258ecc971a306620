package main

import (
	"io"
	"os"
	"time"

	"github.com/localnerve/guardroster/internal/rpcclient"
	"github.com/spf13/cobra"
)

type options struct {
	server  string
	token   string
	timeout time.Duration
	out     io.Writer
}

func (o *options) client() *rpcclient.Client {
	c := rpcclient.New(o.server, o.timeout)
	if o.token != "" {
		c.SetToken(o.token)
	}
	return c
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{out: out}

	root := &cobra.Command{
		Use:   "guardctl",
		Short: "Manage guards, inspections and exercises",
		Long: `guardctl calls a guardroster server.

Log in once and export the printed token as GUARDCTL_TOKEN, or pass --token.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("GUARDCTL_SERVER", "http://localhost:3000"), "server base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("GUARDCTL_TOKEN"), "session token")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		newLoginCmd(opts),
		newGuardsCmd(opts),
		newInspectionsCmd(opts),
		newExercisesCmd(opts),
		newRemindersCmd(opts),
		newExportCmd(opts),
	)
	return root
}
