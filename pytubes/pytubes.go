package pytubes

import (
	"context"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/fine-structures/fliptubes/libtubes"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	pyGraphType = py.NewType("Graph", "a graph along with its tubes, tubings, and flip graph")
)

type pyGraph struct {
	*libtubes.Graph
}

func (X pyGraph) Type() *py.Type {
	return pyGraphType
}

func (X pyGraph) M__str__() (py.Object, error) {
	return py.String(libtubes.EdgesString(X.Edges())), nil
}

func (X pyGraph) M__repr__() (py.Object, error) {
	return X.M__str__()
}

// Arg 1 (str): edge list, e.g. "[(1, 2), (2, 3)]"
func py_ParseGraph(module py.Object, args py.Tuple) (py.Object, error) {
	var edgeList py.Object
	err := py.ParseTuple(args, "s", &edgeList)
	if err != nil {
		return nil, err
	}

	X, err := libtubes.ParseGraph(string(edgeList.(py.String)))
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyGraph{X}), nil
}

func py_Graph_NumVerts(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Int(X.VertexCount()), nil
}

func py_Graph_IsConnected(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.NewBool(X.IsGraphConnected()), nil
}

func py_Graph_NumTubes(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Int(X.Tubes().Len()), nil
}

func py_Graph_NumTubings(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	return py.Int(len(X.Tubings())), nil
}

func py_Graph_Tubes(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyGraph)
	tubes := X.Tubes().Tubes()
	out := make(py.Tuple, len(tubes))
	var buf []byte
	for i, T := range tubes {
		buf = libtubes.AppendTube(buf[:0], T)
		out[i] = py.String(buf)
	}
	return out, nil
}

func py_Graph_FindPath(self py.Object, args py.Tuple) (py.Object, error) {
	return findWalk(self.(pyGraph), args, gotubes.Mode_Paths)
}

func py_Graph_FindCycle(self py.Object, args py.Tuple) (py.Object, error) {
	return findWalk(self.(pyGraph), args, gotubes.Mode_Cycles)
}

// Arg 1 (int): number of tries
// Arg 2 (int, optional): seed (0 denotes random)
//
// Returns a tuple of tubing strings or None if no witness was found.
func findWalk(X pyGraph, args py.Tuple, mode gotubes.Mode) (py.Object, error) {
	var triesObj, seedObj py.Object
	err := py.ParseTuple(args, "i|i", &triesObj, &seedObj)
	if err != nil {
		return nil, err
	}

	opts := gotubes.SearchOpts{
		Mode: mode,
	}
	tries, err := py.GetInt(triesObj)
	if err != nil {
		return nil, err
	}
	opts.Tries = int(tries)
	if seedObj != nil {
		seed, err := py.GetInt(seedObj)
		if err != nil {
			return nil, err
		}
		opts.Seed = uint64(seed)
	}
	if err = opts.Validate(); err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	if !X.IsGraphConnected() {
		return py.None, nil
	}

	rep := libtubes.SearchGraph(context.Background(), X.Graph, opts, nil)
	if rep.Err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", rep.Err)
	}
	if rep.Outcome != gotubes.Outcome_Found {
		return py.None, nil
	}

	tubings := rep.Result.Walk.Tubings()
	out := make(py.Tuple, len(tubings))
	for i, Xi := range tubings {
		out[i] = py.String(libtubes.TubingString(Xi))
	}
	return out, nil
}

func init() {

	/////////////////////////////////
	// Graph
	{
		pyGraphType.Dict["NumVerts"] = py.MustNewMethod("NumVerts", py_Graph_NumVerts, 0, "")
		pyGraphType.Dict["IsConnected"] = py.MustNewMethod("IsConnected", py_Graph_IsConnected, 0, "")
		pyGraphType.Dict["NumTubes"] = py.MustNewMethod("NumTubes", py_Graph_NumTubes, 0, "")
		pyGraphType.Dict["NumTubings"] = py.MustNewMethod("NumTubings", py_Graph_NumTubings, 0, "number of maximal tubings (flip graph vertices)")
		pyGraphType.Dict["Tubes"] = py.MustNewMethod("Tubes", py_Graph_Tubes, 0, "")
		pyGraphType.Dict["FindPath"] = py.MustNewMethod("FindPath", py_Graph_FindPath, 0, "randomized facet Hamiltonian path search: FindPath(tries, seed=0)")
		pyGraphType.Dict["FindCycle"] = py.MustNewMethod("FindCycle", py_Graph_FindCycle, 0, "randomized facet Hamiltonian cycle search: FindCycle(tries, seed=0)")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("ParseGraph", py_ParseGraph, 0, "reads a Graph from an edge list string"),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"PATHS":       py.String(gotubes.Mode_Paths.String()),
			"CYCLES":      py.String(gotubes.Mode_Cycles.String()),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pytubes",
				Doc:  "tubings and flip graph gpython module",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
