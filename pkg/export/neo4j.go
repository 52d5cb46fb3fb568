package export

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/proteincraft/rincraft/pkg/graph"
	"github.com/proteincraft/rincraft/pkg/logging"
)

// Neo4jExporter loads structure graphs into a Neo4j database using
// batch UNWIND queries.
type Neo4jExporter struct {
	driver neo4j.DriverWithContext
	logger logging.Logger
}

// NewNeo4jExporter connects to Neo4j and returns a ready-to-use exporter.
func NewNeo4jExporter(ctx context.Context, uri, user, password string, logger logging.Logger) (*Neo4jExporter, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("neo4j unreachable: %w", err)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Neo4jExporter{driver: driver, logger: logger}, nil
}

// Close releases the underlying Neo4j driver resources.
func (x *Neo4jExporter) Close(ctx context.Context) {
	x.driver.Close(ctx)
}

// runCypher runs a single Cypher statement with optional parameters.
func (x *Neo4jExporter) runCypher(ctx context.Context, cypher string, params map[string]any) error {
	_, err := neo4j.ExecuteQuery(ctx, x.driver, cypher, params, neo4j.EagerResultTransformer)
	return err
}

// CreateIndexes ensures the required Neo4j indexes exist.
func (x *Neo4jExporter) CreateIndexes(ctx context.Context) error {
	indexes := []string{
		"CREATE INDEX residue_key IF NOT EXISTS FOR (n:Residue) ON (n.key)",
		"CREATE INDEX residue_structure IF NOT EXISTS FOR (n:Residue) ON (n.structure)",
	}
	for _, q := range indexes {
		if err := x.runCypher(ctx, q, nil); err != nil {
			return err
		}
	}
	return nil
}

// DeleteStructure removes a previously loaded structure graph.
func (x *Neo4jExporter) DeleteStructure(ctx context.Context, name string) error {
	return x.runCypher(ctx,
		"MATCH (n:Residue {structure: $structure}) DETACH DELETE n",
		map[string]any{"structure": name},
	)
}

// residueBatch builds one UNWIND row per node. Keys are namespaced by
// structure name so repeated exports replace instead of duplicating.
func residueBatch(g *graph.Graph) []map[string]any {
	nodes := g.Nodes()
	batch := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		batch = append(batch, map[string]any{
			"key":       g.Name + "/" + n.ID,
			"id":        n.ID,
			"chain":     n.Chain,
			"position":  n.Position,
			"residue":   n.Residue,
			"oneLetter": n.OneLetter,
			"dssp":      n.Dssp,
			"x":         n.X,
			"y":         n.Y,
			"z":         n.Z,
		})
	}
	return batch
}

// interactionBatch builds one UNWIND row per edge.
func interactionBatch(g *graph.Graph) []map[string]any {
	edges := g.Edges()
	batch := make([]map[string]any, 0, len(edges))
	for _, e := range edges {
		batch = append(batch, map[string]any{
			"source":      g.Name + "/" + e.Source,
			"target":      g.Name + "/" + e.Target,
			"interaction": e.Interaction,
			"category":    e.Category.String(),
			"distance":    e.Distance,
		})
	}
	return batch
}

// ExportGraph upserts one structure's residues and interactions.
func (x *Neo4jExporter) ExportGraph(ctx context.Context, g *graph.Graph) error {
	batch := residueBatch(g)
	x.logger.Info("exporting residues to neo4j",
		logging.Structure(g.Name),
		logging.Count(len(batch)))

	err := x.runCypher(ctx,
		`UNWIND $batch AS row
		 MERGE (n:Residue {key: row.key})
		 SET n.structure = $structure, n.id = row.id, n.chain = row.chain,
		     n.position = row.position, n.residue = row.residue,
		     n.one_letter = row.oneLetter, n.dssp = row.dssp,
		     n.x = row.x, n.y = row.y, n.z = row.z`,
		map[string]any{"batch": batch, "structure": g.Name},
	)
	if err != nil {
		return fmt.Errorf("loading residues: %w", err)
	}

	edgeBatch := interactionBatch(g)
	x.logger.Info("exporting interactions to neo4j",
		logging.Structure(g.Name),
		logging.Count(len(edgeBatch)))

	err = x.runCypher(ctx,
		`UNWIND $batch AS row
		 MATCH (s:Residue {key: row.source}), (t:Residue {key: row.target})
		 MERGE (s)-[r:INTERACTS {interaction: row.interaction}]->(t)
		 SET r.category = row.category, r.distance = row.distance`,
		map[string]any{"batch": edgeBatch},
	)
	if err != nil {
		return fmt.Errorf("loading interactions: %w", err)
	}
	return nil
}
