// Package report renders the pre-scan and end-of-session tables.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kliatsko/librarymirror/internal/mirror"
	apperrors "github.com/kliatsko/librarymirror/pkg/errors"
	"github.com/kliatsko/librarymirror/pkg/formatters"
)

// PrintScanTable renders the pre-operation statistics for every folder:
// source and destination file counts and sizes side by side.
func PrintScanTable(out io.Writer, folders []mirror.FolderResult) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{
		text.Bold.Sprint("Folder"),
		text.Bold.Sprint("Source Files"),
		text.Bold.Sprint("Source Size"),
		text.Bold.Sprint("Backup Files"),
		text.Bold.Sprint("Backup Size"),
	})

	for _, folder := range folders {
		if folder.Status == mirror.StatusSourceMissing {
			t.AppendRow(table.Row{folder.Target.Name, "-", "source missing", "-", "-"})
			continue
		}

		t.AppendRow(table.Row{
			folder.Target.Name,
			folder.Source.FileCount,
			formatters.FormatSize(folder.Source.TotalBytes),
			folder.Dest.FileCount,
			formatters.FormatSize(folder.Dest.TotalBytes),
		})
	}

	t.Render()
}

// PrintSessionTable renders the per-folder results and the totals footer.
func PrintSessionTable(out io.Writer, result mirror.SessionResult) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignLeft},
	})
	t.AppendHeader(table.Row{
		text.Bold.Sprint("Folder"),
		text.Bold.Sprint("Copied"),
		text.Bold.Sprint("Skipped"),
		text.Bold.Sprint("Deleted"),
		text.Bold.Sprint("Failed"),
		text.Bold.Sprint("Bytes"),
		text.Bold.Sprint("Status"),
	})

	for _, folder := range result.Folders {
		t.AppendRow(table.Row{
			folder.Target.Name,
			folder.Stats.FilesCopied,
			folder.Stats.FilesSkipped,
			folder.Stats.FilesDeleted,
			folder.Stats.FilesFailed,
			formatters.FormatSize(folder.Stats.BytesCopied),
			folder.Status.String(),
		})
	}

	t.AppendFooter(table.Row{
		"Total",
		result.Totals.FilesCopied,
		result.Totals.FilesSkipped,
		result.Totals.FilesDeleted,
		result.Totals.FilesFailed,
		formatters.FormatSize(result.Totals.BytesCopied),
		formatters.FormatDuration(result.Elapsed),
	})

	t.Render()
	printFailures(out, result.Folders)
}

// printFailures lists suggestions for every folder that could not run.
func printFailures(out io.Writer, folders []mirror.FolderResult) {
	for _, folder := range folders {
		if folder.Err == nil {
			continue
		}

		fmt.Fprintf(out, "\n%s: %v\n", folder.Target.Name, folder.Err)

		if suggestions := apperrors.FormatSuggestions(folder.Err); suggestions != "" {
			fmt.Fprintln(out, suggestions)
		}
	}
}
