// Package render writes tasks to a terminal in the supported output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/metalagman/tasktracker/internal/task"
	"gopkg.in/yaml.v3"
)

// Format is an output format for task listings.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTable}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want json|yaml|table)", s)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	statusStyle = map[task.Status]lipgloss.Style{
		task.StatusTodo:       cellStyle.Foreground(lipgloss.Color("3")),
		task.StatusInProgress: cellStyle.Foreground(lipgloss.Color("4")),
		task.StatusDone:       cellStyle.Foreground(lipgloss.Color("2")),
	}
)

// Tasks writes the full task records in the given format.
func Tasks(w io.Writer, tasks []task.Task, format Format) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	switch format {
	case FormatJSON, "":
		return writeJSON(w, tasks)
	case FormatYAML:
		return writeYAML(w, tasks)
	case FormatTable:
		return writeTable(w, tasks)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Task writes a single task record in the given format.
func Task(w io.Writer, t task.Task, format Format) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, t)
	case FormatYAML:
		return writeYAML(w, t)
	case FormatTable:
		return writeTable(w, []task.Task{t})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, tasks []task.Task) error {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.Status.String(),
			t.Name,
			t.CreatedAt.Local().Format(time.DateTime),
			t.UpdatedAt.Local().Format(time.DateTime),
		})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STATUS", "NAME", "CREATED", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(tasks) {
				if style, ok := statusStyle[tasks[row].Status]; ok {
					return style
				}
			}
			return cellStyle
		})
	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
