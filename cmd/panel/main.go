// cmd/panel/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tamzrod/cockpit-panel/internal/display"
	"github.com/tamzrod/cockpit-panel/internal/indicator"
	"github.com/tamzrod/cockpit-panel/internal/layout"
	"github.com/tamzrod/cockpit-panel/internal/script"
	"github.com/tamzrod/cockpit-panel/internal/sim"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatalf("panel: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "panel",
		Short:         "Cockpit display panel renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newReplayCmd())
	cmd.AddCommand(newSimCmd())
	cmd.AddCommand(newLayoutCmd())
	return cmd
}

// --------------------
// replay
// --------------------

func newReplayCmd() *cobra.Command {
	var (
		interval time.Duration
		frames   bool
	)

	cmd := &cobra.Command{
		Use:   "replay <config.yaml> <script.yaml>",
		Short: "Drive the panel from a recorded script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			dev, err := buildDevice(c)
			if err != nil {
				return fmt.Errorf("device build failed: %w", err)
			}
			defer func() {
				if err := dev.close(); err != nil {
					log.Printf("indicator close failed: %v", err)
				}
			}()

			s, err := script.Load(args[1])
			if err != nil {
				return err
			}

			mode := c.Panel.InitialMode()
			ops, err := script.Compile(s, mode)
			if err != nil {
				return err
			}

			log.Printf("replay start (mode=%s steps=%d backend=%s)", mode, len(ops), c.Panel.Indicators.Backend)
			dev.panel.StartMode(mode)

			out := cmd.OutOrStdout()
			var after func(int)
			if frames {
				after = func(i int) {
					fmt.Fprintf(out, "step %d\n%s\n", i+1, render(dev))
				}
			}

			if err := script.Run(cmd.Context(), dev.panel, ops, interval, after); err != nil {
				return err
			}

			if !frames {
				fmt.Fprintln(out, render(dev))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "delay between steps (0 = apply at once)")
	cmd.Flags().BoolVar(&frames, "frames", false, "print the display after every step")
	return cmd
}

// --------------------
// sim
// --------------------

func newSimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sim <config.yaml>",
		Short: "Interactive terminal simulator of the panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			dev, err := buildDevice(c)
			if err != nil {
				return fmt.Errorf("device build failed: %w", err)
			}
			defer func() {
				if err := dev.close(); err != nil {
					log.Printf("indicator close failed: %v", err)
				}
			}()

			dev.panel.StartMode(c.Panel.InitialMode())

			p := tea.NewProgram(sim.New(dev.panel, dev.buf, dev.bank), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("simulator: %w", err)
			}
			return nil
		},
	}
}

// --------------------
// layout
// --------------------

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout [mode]",
		Short: "Print the field anchors and separators of a mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := layout.Modes
			if len(args) == 1 {
				m, err := layout.ParseMode(args[0])
				if err != nil {
					return err
				}
				modes = []layout.Mode{m}
			}

			out := cmd.OutOrStdout()
			for _, m := range modes {
				fmt.Fprintf(out, "%s (%s)\n", m, m.Label())
				if !layout.HasFields(m) {
					fmt.Fprintln(out, "  no field table")
				} else {
					for f := layout.Field(0); f < layout.FieldCount; f++ {
						a := layout.Lookup(m, f)
						fmt.Fprintf(out, "  %-18s col=%-2d row=%d\n", f, a.Col, a.Row)
					}
				}
				for _, s := range layout.Separators(m) {
					fmt.Fprintf(out, "  %-18s col=%-2d row=%d\n", "separator", s.Col, s.Row)
				}
			}
			return nil
		},
	}
}

func render(dev *device) string {
	lamps := make([]display.Lamp, 0, indicator.Count)
	for _, id := range indicator.IDs() {
		lamps = append(lamps, display.Lamp{Label: id.String(), On: dev.bank.State(id)})
	}
	return display.RenderPanel(dev.buf, lamps)
}
