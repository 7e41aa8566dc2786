package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/prizewheel/internal/config"
	"github.com/jask/prizewheel/internal/logging"
	"github.com/jask/prizewheel/internal/tui"
	"github.com/jask/prizewheel/internal/wheel"
)

// cli carries flags and the dependencies built from them.
type cli struct {
	cfgPath string
	verbose bool
	seed    int64
	rewards []string

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "prizewheel",
		Short: "Spin a wheel of rewards in the terminal",
		Long: `prizewheel keeps a list of rewards, lets you add and remove them, and
spins a wheel that lands on one of them at random.

Run without arguments to open the interactive wheel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Wheel.Seed = c.seed
			}
			cfg.Wheel.Rewards = append(cfg.Wheel.Rewards, c.rewards...)
			c.cfg = cfg

			logger, err := logging.New(cfg.Log, c.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "config file (default $HOME/.config/prizewheel/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().Int64Var(&c.seed, "seed", 0, "random seed (0 picks one from the clock)")
	root.PersistentFlags().StringArrayVarP(&c.rewards, "reward", "r", nil, "extra reward to put on the wheel (repeatable)")

	root.AddCommand(newSpinCmd(c))
	return root
}

func (c *cli) runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	state := wheel.NewState(c.cfg.Wheel.Rewards...)
	c.logger.Info("starting wheel",
		zap.Int("rewards", len(state.Rewards)),
		zap.Duration("spin_duration", c.cfg.Wheel.SpinDuration),
		zap.String("remove_mode", c.cfg.Wheel.RemoveMode),
	)

	app := tui.New(state, tui.Options{
		Rules:        c.cfg.Rules(),
		RNG:          wheel.NewRNG(c.cfg.Wheel.Seed),
		SpinDuration: c.cfg.Wheel.SpinDuration,
		Easing:       c.cfg.Easing(),
		FrameRate:    c.cfg.UI.FrameRate,
		Logger:       c.logger,
	})
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run wheel: %w", err)
	}
	return nil
}
