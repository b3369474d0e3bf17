package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/fine-structures/fliptubes/libtubes"
)

var (
	styleFound    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleNotFound = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleMuted    = lipgloss.NewStyle().Faint(true)
)

// writeReport prints one graph's search report and returns true if a witness was found.
// Excluded (disconnected) graphs don't count against the run.
func writeReport(out io.Writer, rep *libtubes.Report, numGraphs int, cfg *RunConfig, opts gotubes.PrintOpts) bool {
	X := rep.Graph

	if rep.Outcome == gotubes.Outcome_Excluded {
		fmt.Fprintf(out, "%s\n", styleMuted.Render(fmt.Sprintf("Skipping graph %d/%d (disconnected)", X.SeqID, numGraphs)))
		return true
	}

	fmt.Fprintf(out, "\n\nTrying graph: %d/%d\n", X.SeqID, numGraphs)
	fmt.Fprintf(out, "%s\n", libtubes.EdgesString(X.Edges()))

	switch {
	case rep.Err != nil:
		fmt.Fprintf(out, "%s: %v\n\n", styleNotFound.Render("Search failed"), rep.Err)
		return false

	case rep.Outcome == gotubes.Outcome_Found:
		fmt.Fprintf(out, "%s\n\n", styleFound.Render("Found one!:"))
		if opts.Walk {
			rep.Result.Walk.WriteAsString(out)
		}
		return true

	default:
		fmt.Fprintf(out, "%s in %d attempts.\n\n", styleNotFound.Render("None found"), cfg.Tries)
		return false
	}
}

func writeSummary(out io.Writer, allFound bool) {
	if allFound {
		fmt.Fprintf(out, "\n\n All these graphs have facet hamiltonian paths/cycles\n")
	} else {
		fmt.Fprintf(out, "\n\n Facet hamiltonian paths/cycles not found for all graphs\n")
	}
}
