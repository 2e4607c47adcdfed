// Command morphgraphctl is a small CLI around the morphgraph library:
// match a pattern against a Neo4j JSON export, apply or exhaustively
// apply a rewrite rule, and export a rule as Cypher.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/morphgraph"
	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/cypher"
	"github.com/katalvlaran/morphgraph/internal/clog"
	"github.com/katalvlaran/morphgraph/neo4jio"
)

var (
	version = "0.1.0"

	cfgPath         string
	checkEdgeLabels bool
	logger          *clog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "morphgraphctl",
		Short: "Match and rewrite graphs loaded from Neo4j JSON exports",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			level := clog.LevelInfo
			if cfg.LogLevel == "debug" {
				level = clog.LevelDebug
			}
			logger = clog.New(level)
			if cfg.EdgeCheck {
				checkEdgeLabels = true
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&checkEdgeLabels, "check-edge-labels", true, "require matched edges to carry equal labels")

	root.AddCommand(
		newVersionCmd(),
		newMatchCmd(),
		newApplyCmd(),
		newRewriteCmd(),
		newExportCypherCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("morphgraphctl v%s\n", version)
		},
	}
}

func newMatchCmd() *cobra.Command {
	var findAll bool
	cmd := &cobra.Command{
		Use:   "match <pattern.json> <host.json>",
		Short: "Find every embedding of a pattern graph into a host graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := loadNeo4jFile(args[0])
			if err != nil {
				return err
			}
			host, err := loadNeo4jFile(args[1])
			if err != nil {
				return err
			}

			matches := morphgraph.MatchSubgraphs(pattern, host, morphgraph.MatchOptions{FindAll: findAll, CheckEdgeLabels: checkEdgeLabels})
			logger.Info("matched pattern", clog.F("count", len(matches)))
			for i, m := range matches {
				fmt.Printf("match %d: %v\n", i, m.NodeMap)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&findAll, "find-all", true, "return every match instead of only the first")

	return cmd
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <rule.json> <host.json>",
		Short: "Apply a rewrite rule once, at its first valid match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ru, err := loadRule(args[0])
			if err != nil {
				return err
			}
			host, err := loadNeo4jFile(args[1])
			if err != nil {
				return err
			}

			out, applied, err := morphgraph.ApplyRule(ru, host, morphgraph.MatchOptions{CheckEdgeLabels: checkEdgeLabels})
			if err != nil {
				return err
			}
			logger.Info("apply finished", clog.F("applied", applied), clog.F("nodes", out.NodeCount()), clog.F("edges", out.EdgeCount()))

			return nil
		},
	}
}

func newRewriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite <rule.json> <host.json>",
		Short: "Apply a rewrite rule exhaustively, branching at every match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ru, err := loadRule(args[0])
			if err != nil {
				return err
			}
			host, err := loadNeo4jFile(args[1])
			if err != nil {
				return err
			}

			finals, err := morphgraph.ApplyExhaustive(ru, host, morphgraph.MatchOptions{CheckEdgeLabels: checkEdgeLabels})
			if err != nil {
				return err
			}
			logger.Info("rewrite finished", clog.F("terminal_graphs", len(finals)))
			for i, g := range finals {
				fmt.Printf("graph %d: %d nodes, %d edges\n", i, g.NodeCount(), g.EdgeCount())
			}

			return nil
		},
	}
}

func newExportCypherCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export-cypher <rule.json>",
		Short: "Render a rule as a Cypher statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ru, err := loadRule(args[0])
			if err != nil {
				return err
			}
			if outPath != "" {
				return cypher.ExportToFile(ru, outPath)
			}
			cy, err := cypher.Export(ru)
			if err != nil {
				return err
			}
			fmt.Print(cy)

			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the rendered Cypher to this file instead of stdout")

	return cmd
}

func loadNeo4jFile(path string) (*core.Graph[neo4jio.NodeData, neo4jio.RelationType], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("morphgraphctl: reading %q: %w", path, err)
	}
	g, err := neo4jio.LoadGraph(data)
	if err != nil {
		return nil, fmt.Errorf("morphgraphctl: loading %q: %w", path, err)
	}

	return g, nil
}
