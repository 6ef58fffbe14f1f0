// Command mstrepair builds the MST of a sample or seeded random graph, cuts one
// tree edge and repairs the tree with the cheapest reconnecting edge, narrating
// every step through logrus.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrepair/builder"
	"github.com/katalvlaran/mstrepair/repair"
	"github.com/katalvlaran/mstrepair/report"
)

// input builds the configured graph.
func input(cfg GraphConfig) (*builder.Fixture, error) {
	if cfg.Kind == "sample" {
		return builder.Build(nil, builder.Sample())
	}

	return builder.Build(
		[]builder.Option{builder.WithSeed(cfg.Seed), builder.WithUniformWeights(1, cfg.MaxWeight)},
		builder.RandomConnected(cfg.Vertices, cfg.Extra),
	)
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mstrepair",
		Short:         "Remove one edge from a minimum spanning tree and reconnect it",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())

			return run(cfg, log, cmd.OutOrStdout())
		},
	}
	registerFlags(cmd.Flags())

	return cmd
}

// run executes one build → remove → repair cycle on the configured graph and
// prints the before/after trees to out.
func run(cfg Config, log *logrus.Logger, out io.Writer) error {
	reg := prometheus.NewRegistry()
	metrics, err := report.NewMetrics(reg)
	if err != nil {
		return err
	}

	opts := []repair.Option{
		repair.WithMethod(cfg.MST.Method),
		repair.WithRoot(cfg.MST.Root),
		repair.WithReporter(report.NewMulti(report.NewLogger(log), metrics)),
	}
	if cfg.MST.Traversal == "bfs" {
		opts = append(opts, repair.WithBreadthFirst())
	}
	fx, err := input(cfg.Graph)
	if err != nil {
		return err
	}
	g, err := repair.New(fx.N, fx.Edges, opts...)
	if err != nil {
		return err
	}

	if _, err = g.BuildMST(); err != nil {
		return err
	}
	printTree(out, "INITIAL MST:", g)

	index := cfg.Remove.Index
	if index < 0 {
		var ok bool
		if index, ok = g.IndexOfWeight(cfg.Remove.Weight); !ok {
			return fmt.Errorf("no edge with weight %d in the tree", cfg.Remove.Weight)
		}
	}

	outcome, err := g.Repair(index)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed edge: %s\n", outcome.Removed)
	fmt.Fprintf(out, "Component 1: %s\n", outcome.Partition.A)
	fmt.Fprintf(out, "Component 2: %s\n\n", outcome.Partition.B)
	if outcome.Repaired {
		fmt.Fprintf(out, "Added replacement edge: %s\n\n", outcome.Replacement)
		printTree(out, "NEW MST AFTER RECONNECTION:", g)
	} else {
		fmt.Fprintln(out, "No valid replacement edge found.")
	}

	if cfg.Metrics {
		return printMetrics(out, reg)
	}

	return nil
}

func printTree(out io.Writer, title string, g *repair.Graph) {
	fmt.Fprintln(out, title)
	for _, e := range g.CurrentMST() {
		fmt.Fprintf(out, "  %s\n", e)
	}
	fmt.Fprintf(out, "  Total weight: %d\n", g.TotalWeight())
	fmt.Fprintf(out, "  Number of edges: %d\n\n", g.Len())
}

func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "METRICS:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue()
			if m.GetGauge() != nil {
				value = m.GetGauge().GetValue()
			}
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(out, "  %s%s %g\n", mf.GetName(), labels, value)
		}
	}

	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
