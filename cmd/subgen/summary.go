package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/unyfilm/subgen/internal/batch"
)

// printSummary renders the per-item outcomes: a table on an interactive
// terminal, plain lines when the output is piped or captured.
func printSummary(summary batch.Summary) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		for _, res := range summary.Results {
			if res.Err != nil {
				fmt.Printf("%s\t%s\t%v\n", res.ID, res.Outcome, res.Err)
			} else {
				fmt.Printf("%s\t%s\n", res.ID, res.Outcome)
			}
		}
		fmt.Printf("total\t%d succeeded\t%d failed\n", summary.Succeeded, summary.Failed)
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Video", "Outcome", "Detail"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	for _, res := range summary.Results {
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		tw.AppendRow(table.Row{res.ID, res.Outcome.String(), detail})
	}
	tw.AppendFooter(table.Row{"total", fmt.Sprintf("%d ok / %d failed", summary.Succeeded, summary.Failed), ""})
	tw.Render()
}
