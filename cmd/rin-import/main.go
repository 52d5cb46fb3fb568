package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/proteincraft/rincraft/pkg/config"
	"github.com/proteincraft/rincraft/pkg/export"
	"github.com/proteincraft/rincraft/pkg/graph"
	"github.com/proteincraft/rincraft/pkg/layout"
	"github.com/proteincraft/rincraft/pkg/render"
	"github.com/proteincraft/rincraft/pkg/rin"
	"github.com/proteincraft/rincraft/pkg/topology"
)

func main() {
	nodesFile := flag.String("nodes", "", "Path to *_ringNodes file")
	edgesFile := flag.String("edges", "", "Path to *_ringEdges file")
	configFile := flag.String("config", "", "Optional YAML analysis config")
	orientation := flag.String("orientation", "", "Segment pair layout: vertical or horizontal")
	includeVDW := flag.Bool("include-vdw", true, "Include VDW interactions in segment analysis")
	jsonOut := flag.String("json", "", "Write graph + subgraph visualization JSON to this directory")
	neo4jExport := flag.Bool("neo4j", false, "Export the graph to Neo4j (configured via sinks.neo4j)")
	flag.Parse()

	if *nodesFile == "" || *edgesFile == "" {
		fmt.Println("Usage: rin-import --nodes file.pdb_ringNodes --edges file.pdb_ringEdges [--config analysis.yaml] [--json out/] [--neo4j]")
		os.Exit(1)
	}

	// Sink credentials come from the environment; a local .env is honored.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *orientation != "" {
		cfg.Layout.Orientation = *orientation
	}
	cfg.Analysis.IncludeVDW = *includeVDW

	importer := rin.NewImporter(nil, nil)
	g, report, err := importer.ImportFiles(*nodesFile, *edgesFile)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	stats := g.Stats()
	logger.Info("graph imported",
		"name", g.Name,
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"chains", stats.Chains,
		"backbone_edges", report.BackboneEdges,
	)
	if !report.Clean() {
		logger.Warn("import tolerated malformed input",
			"short_rows", report.ShortRows,
			"unknown_refs", report.UnknownRefs,
			"field_defaults", report.FieldDefaults,
		)
		for _, w := range report.Warnings {
			logger.Warn("import warning", "detail", w.String())
		}
	}

	// Intra-binder segment analysis with bipartite layouts.
	analyzer := topology.NewAnalyzer(nil, nil)
	pairs := analyzer.IntraInteractions(g, cfg.Analysis.BinderChain, cfg.Analysis.IncludeVDW)
	logger.Info("segment pair analysis",
		"chain", cfg.Analysis.BinderChain,
		"interacting_pairs", len(pairs),
		"include_vdw", cfg.Analysis.IncludeVDW,
	)

	bipartite := layout.NewBipartiteLayout(nil, nil, nil)
	positions := make(map[string]map[string]layout.Position, len(pairs)+1)
	for _, p := range pairs {
		positions[p.Subgraph.Name] = bipartite.ComputeLayout(
			layout.Orientation(cfg.Layout.Orientation), p.A.Nodes, p.B.Nodes)
	}

	// Binder-target connectivity with the paired row layout.
	metrics := analyzer.ComputeStructureMetrics(g)
	logger.Info("binder-target analysis",
		"inter_chain_total", metrics.InterChainTotal,
		"inter_chain_without_vdw", metrics.InterChainWithoutVDW,
		"binder_target_bonds", metrics.BinderTargetBonds,
		"binder_target_bonds_largest_component", metrics.BinderTargetBondsLargestComponent,
		"binder_target_bonds_no_vdw", metrics.BinderTargetBondsNoVDW,
	)

	binderNodes, targetNodes := topology.InteractingChainNodes(
		g, cfg.Analysis.BinderChain, cfg.Analysis.TargetChain, cfg.Analysis.IncludeVDW)
	if crossSG := g.SubgraphByName(topology.BinderTargetName); crossSG != nil {
		paired := layout.NewPairedLayout(nil, nil, nil)
		pos, reversed := paired.ComputeLayout(crossSG, binderNodes, targetNodes)
		positions[crossSG.Name] = pos
		logger.Info("binder-target layout", "nodes", len(pos), "reversed", reversed)
	}

	if *jsonOut != "" {
		if err := writeVisualizations(*jsonOut, g, positions); err != nil {
			logger.Error("failed to write visualization JSON", "error", err)
			os.Exit(1)
		}
		logger.Info("visualization JSON written", "dir", *jsonOut)
	}

	if *neo4jExport {
		if cfg.Sinks.Neo4j == nil {
			logger.Error("neo4j export requested but sinks.neo4j is not configured")
			os.Exit(1)
		}
		if err := exportNeo4j(context.Background(), cfg.Sinks.Neo4j, g); err != nil {
			logger.Error("neo4j export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("graph exported to neo4j", "uri", cfg.Sinks.Neo4j.URI)
	}
}

// writeVisualizations emits one JSON file for the whole graph and one
// per registered subgraph that has layout positions.
func writeVisualizations(dir string, g *graph.Graph, positions map[string]map[string]layout.Position) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	hints := render.BuildHints(g)

	data, err := render.FromGraph(g, nil).ExportJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, g.Name+".json"), data, 0644); err != nil {
		return err
	}

	for _, name := range g.SubgraphNames() {
		sg := g.SubgraphByName(name)
		if sg == nil {
			continue
		}
		data, err := render.FromSubgraph(sg, positions[name], hints).ExportJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func exportNeo4j(ctx context.Context, nc *config.Neo4jConfig, g *graph.Graph) error {
	password := os.Getenv("RINCRAFT_NEO4J_PASSWORD")
	exporter, err := export.NewNeo4jExporter(ctx, nc.URI, nc.Username, password, nil)
	if err != nil {
		return err
	}
	defer exporter.Close(ctx)

	if err := exporter.CreateIndexes(ctx); err != nil {
		return err
	}
	if err := exporter.DeleteStructure(ctx, g.Name); err != nil {
		return err
	}
	return exporter.ExportGraph(ctx, g)
}
