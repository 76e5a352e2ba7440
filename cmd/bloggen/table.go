package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bloggen/internal/pipeline"
	"bloggen/internal/posts"
)

// renderSummary lays out the run counters as a metric/value table, counts
// right-aligned so they line up when scanned top to bottom.
func renderSummary(summary pipeline.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Documents processed", summary.Documents},
		{"Articles generated", summary.Generated},
		{"Cache reused", summary.Reused},
		{"Rows inserted", summary.Inserted},
		{"Skipped (already stored)", summary.Skipped},
		{"Cache directory", summary.CacheDir},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderPosts lays out stored articles newest first, one row per article.
func renderPosts(recent []posts.Post) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Created", "Title", "Category"})
	for _, post := range recent {
		tw.AppendRow(table.Row{post.ID, post.CreatedAt, post.Title, post.Category})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return tw.Render()
}
