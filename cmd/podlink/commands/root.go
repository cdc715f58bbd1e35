// Package commands implements the CLI commands for podlink.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/podlink/internal/app"
	"go.trai.ch/podlink/internal/build"
)

// CLI represents the command line interface for podlink.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "podlink",
		Short:         "Inspect how dependency aggregate targets are wired into Xcode projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the podlink.yaml manifest or its directory")
	rootCmd.PersistentFlags().String("state", "", "Integration state directory (default <manifest dir>/"+app.DefaultStateDir+")")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Number of targets processed at once (default GOMAXPROCS)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output and errors.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	stateDir, _ := cmd.Flags().GetString("state")
	jobs, _ := cmd.Flags().GetInt("jobs")
	return app.Options{
		ConfigPath:  configPath,
		StateDir:    stateDir,
		Parallelism: jobs,
	}
}
