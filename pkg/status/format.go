package status

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
)

// Formatter defines how run events are rendered as single lines
type Formatter interface {
	// FormatRunStart formats the opening banner line
	FormatRunStart(info RunInfo) string

	// FormatMove formats a move (or simulated move) line
	FormatMove(source, dest string, simulated bool) string

	// FormatFolder formats a category folder creation line
	FormatFolder(path string, simulated bool) string

	// FormatExcluded formats a line for a file skipped by an exclude pattern
	FormatExcluded(source string) string

	// FormatError formats a per-file failure line
	FormatError(source string, err error) string

	// FormatCategoryCount formats one summary line for a category
	FormatCategoryCount(category string, count int) string

	// FormatTotals formats the closing totals line
	FormatTotals(summary Summary) string
}

// DefaultFormatter provides the default line rendering
type DefaultFormatter struct {
	arrow string
}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{
		arrow: color.New(color.FgCyan).Sprint("->"),
	}
}

func (f *DefaultFormatter) FormatRunStart(info RunInfo) string {
	mode := "organizing"
	if info.Simulate {
		mode = "dry run"
	}
	if info.RenamePattern != "" {
		return fmt.Sprintf("%s %s (rename %q)", mode, info.TargetDir, info.RenamePattern)
	}
	return fmt.Sprintf("%s %s", mode, info.TargetDir)
}

func (f *DefaultFormatter) FormatMove(source, dest string, simulated bool) string {
	verb := "Moved"
	if simulated {
		verb = "Would move"
	}
	return fmt.Sprintf("%s %s %s %s", verb, filepath.Base(source), f.arrow, dest)
}

func (f *DefaultFormatter) FormatFolder(path string, simulated bool) string {
	if simulated {
		return fmt.Sprintf("Would create folder %s", path)
	}
	return fmt.Sprintf("Created folder %s", path)
}

func (f *DefaultFormatter) FormatExcluded(source string) string {
	return fmt.Sprintf("Skipped %s (excluded)", filepath.Base(source))
}

func (f *DefaultFormatter) FormatError(source string, err error) string {
	return fmt.Sprintf("Failed %s: %v", filepath.Base(source), err)
}

func (f *DefaultFormatter) FormatCategoryCount(category string, count int) string {
	noun := "files"
	if count == 1 {
		noun = "file"
	}
	return fmt.Sprintf("  %s: %d %s", category, count, noun)
}

func (f *DefaultFormatter) FormatTotals(summary Summary) string {
	return fmt.Sprintf("%d processed, %d skipped, %d total", summary.Moved, summary.Skipped, summary.TotalFiles)
}
