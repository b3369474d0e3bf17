package libtubes

import (
	"context"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/plan-systems/klog"
)

// GraphStream is a pipeline stage emitting graphs.
type GraphStream struct {
	Outlet chan *Graph
}

// Report is the result of searching one graph.
type Report struct {
	Graph     *Graph
	Outcome   gotubes.Outcome
	FlipGraph *FlipGraph    // nil if the graph was excluded
	Result    *SearchResult // nil if the graph was excluded or Err is set
	Err       error         // set if the search could not run (e.g. an inconsistent flip graph)
}

// ReportStream is a pipeline stage emitting search reports.
type ReportStream struct {
	Outlet chan *Report
}

func NewGraphStream() *GraphStream {
	stream := &GraphStream{
		Outlet: make(chan *Graph, 1),
	}
	return stream
}

// StreamGraphs emits the given graphs in order and then closes.
func StreamGraphs(graphs []*Graph) *GraphStream {
	next := NewGraphStream()

	go func() {
		for _, X := range graphs {
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}

func (stream *GraphStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// PullAll drains this stream and returns the graphs received.
func (stream *GraphStream) PullAll() []*Graph {
	var graphs []*Graph
	for X := range stream.Outlet {
		graphs = append(graphs, X)
	}
	return graphs
}

// DropDupes passes along only the first graph for each unique edge set.
func (stream *GraphStream) DropDupes() *GraphStream {
	next := NewGraphStream()

	go func() {
		set := NewGraphSet()
		for X := range stream.Outlet {
			added, err := set.TryAdd(X)
			if err != nil {
				klog.Errorf("graph %d: duplicate check failed: %v", X.SeqID, err)
				added = true
			}
			if added {
				next.Outlet <- X
			} else {
				klog.V(1).Infof("graph %d: dropping duplicate %v", X.SeqID, X.edges)
			}
		}
		set.Close()
		next.Close()
	}()

	return next
}

// Search runs SearchGraph on each graph from this stream, one graph at a time.
// Trials within each graph's search run in parallel.
func (stream *GraphStream) Search(ctx context.Context, opts gotubes.SearchOpts, metrics *Metrics) *ReportStream {
	next := &ReportStream{
		Outlet: make(chan *Report, 1),
	}

	go func() {
		for X := range stream.Outlet {
			next.Outlet <- SearchGraph(ctx, X, opts, metrics)
		}
		next.Close()
	}()

	return next
}

// SearchGraph builds X's flip graph and searches it, unless X is disconnected (in which case X is excluded).
func SearchGraph(ctx context.Context, X *Graph, opts gotubes.SearchOpts, metrics *Metrics) *Report {
	rep := &Report{
		Graph:   X,
		Outcome: gotubes.Outcome_Excluded,
	}

	if !X.IsGraphConnected() {
		klog.V(1).Infof("graph %d: disconnected, skipping", X.SeqID)
		metrics.observeGraph(rep.Outcome.String())
		return rep
	}

	rep.FlipGraph, rep.Err = NewFlipGraph(X)
	if rep.Err == nil {
		metrics.observeFlipGraph(rep.FlipGraph)
		rep.Result, rep.Err = rep.FlipGraph.Search(ctx, opts, metrics)
	}
	if rep.Err != nil {
		klog.Warningf("graph %d: search failed: %v", X.SeqID, rep.Err)
		rep.Outcome = gotubes.Outcome_NotFound
		metrics.observeGraph("error")
		return rep
	}

	rep.Outcome = rep.Result.Outcome
	metrics.observeGraph(rep.Outcome.String())
	return rep
}

func (stream *ReportStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// PullAll drains this stream and returns the reports received.
func (stream *ReportStream) PullAll() []*Report {
	var reports []*Report
	for rep := range stream.Outlet {
		reports = append(reports, rep)
	}
	return reports
}
