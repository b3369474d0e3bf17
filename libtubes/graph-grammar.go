package libtubes

import (
	"bufio"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/pkg/errors"
)

// EdgeListExpr is a graph written as a list of vertex pairs, e.g. "[(1, 2), (2, 3), (3, 4)]".
// The outer brackets are optional.
type EdgeListExpr struct {
	Edges []*EdgeExpr `"["? ( @@ ( "," @@ )* )? "]"?`
}

type EdgeExpr struct {
	VtxA int64 `"(" @Int ","`
	VtxB int64 `@Int ")"`
}

var parseEdgeList = participle.MustBuild[EdgeListExpr]()

func vtxFromExpr(ID int64) (gotubes.VtxID, error) {
	if ID < 0 || ID > gotubes.MaxVtxID {
		return 0, errors.Wrapf(gotubes.ErrBadVtxID, "vertex %d out of range", ID)
	}
	return gotubes.VtxID(ID), nil
}

// ParseEdges reads a single edge list expression.
func ParseEdges(edgeList string) ([]gotubes.Edge, error) {
	expr, err := parseEdgeList.ParseString("", edgeList)
	if err != nil {
		return nil, errors.Wrap(gotubes.ErrBadEncoding, err.Error())
	}

	edges := make([]gotubes.Edge, 0, len(expr.Edges))
	for _, ei := range expr.Edges {
		va, err := vtxFromExpr(ei.VtxA)
		if err != nil {
			return nil, err
		}
		vb, err := vtxFromExpr(ei.VtxB)
		if err != nil {
			return nil, err
		}
		edges = append(edges, gotubes.Edge{va, vb})
	}
	return edges, nil
}

// ParseGraph reads a single edge list expression into a new Graph.
func ParseGraph(edgeList string) (*Graph, error) {
	edges, err := ParseEdges(edgeList)
	if err != nil {
		return nil, err
	}
	return NewGraph(edges), nil
}

// ReadGraphs reads one graph per non-blank line.
//
// Either every line parses or an error naming the first bad line is returned (and no graphs).
func ReadGraphs(in io.Reader) ([]*Graph, error) {
	var graphs []*Graph

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		X, err := ParseGraph(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNum)
		}
		X.SeqID = len(graphs) + 1
		graphs = append(graphs, X)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return graphs, nil
}
