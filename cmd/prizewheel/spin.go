package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/prizewheel/internal/animation"
	"github.com/jask/prizewheel/internal/wheel"
)

type spinResult struct {
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	Angle  float64 `json:"angle"`
	Result string  `json:"result"`
}

func newSpinCmd(c *cli) *cobra.Command {
	var (
		asJSON    bool
		noAnimate bool
	)
	cmd := &cobra.Command{
		Use:   "spin [reward...]",
		Short: "Spin once without the interactive screen",
		Long: `Spins the wheel once using the configured rewards plus any given as
arguments, and prints the result. The spin animation is drawn on stderr.

Example:
  prizewheel spin Coffee Cake "Movie night"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := append(append([]string{}, c.cfg.Wheel.Rewards...), args...)
			var progress io.Writer
			if !noAnimate {
				progress = cmd.ErrOrStderr()
			}
			res, err := c.spinOnce(cmd.Context(), labels, progress)
			if err != nil {
				return err
			}
			if asJSON {
				return jsoniter.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Result)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&noAnimate, "no-animate", false, "skip the spin animation")
	return cmd
}

// spinOnce runs one spin to completion. When progress is nil the wheel
// settles immediately.
func (c *cli) spinOnce(ctx context.Context, labels []string, progress io.Writer) (spinResult, error) {
	rules := c.cfg.Rules()
	s, err := rules.Spin(wheel.NewState(labels...), wheel.NewRNG(c.cfg.Wheel.Seed))
	if err != nil {
		return spinResult{}, fmt.Errorf("spin: %w", err)
	}
	sp := *s.Spin
	c.logger.Info("spin started", zap.Int("index", sp.Index), zap.Float64("target", sp.Target))

	if progress != nil {
		tr := animation.Transition{From: sp.From, To: sp.Target, Duration: c.cfg.Wheel.SpinDuration, Easing: c.cfg.Easing()}
		err := animation.Run(ctx, tr, c.cfg.UI.FrameRate, func(v, p float64) {
			s, _ = rules.Reduce(s, wheel.Frame{Seq: sp.Seq, Angle: v})
			fmt.Fprintf(progress, "\rspinning %8.0f° %3.0f%%", v, p*100)
		})
		fmt.Fprintln(progress)
		if errors.Is(err, context.Canceled) {
			return spinResult{}, fmt.Errorf("spin interrupted: %w", err)
		}
		if err != nil {
			return spinResult{}, err
		}
	}

	s, err = rules.Reduce(s, wheel.Settle{Seq: sp.Seq})
	if err != nil {
		return spinResult{}, fmt.Errorf("settle: %w", err)
	}
	c.logger.Info("spin settled", zap.String("result", s.Result))
	return spinResult{Index: sp.Index, Label: sp.Label, Angle: s.Angle, Result: s.Result}, nil
}
