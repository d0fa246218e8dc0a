package viewer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Filter describes one selectable file pattern for the file-open collaborator.
type Filter struct {
	Description string
	Pattern     string
}

// OBJFilters is the filter set used for every open-file request.
var OBJFilters = []Filter{
	{Description: "Wavefront OBJ", Pattern: "*.obj"},
	{Description: "All files", Pattern: "*.*"},
}

// FileSelector is the host-controlled file-selection capability. Select
// blocks until the user picks a path or cancels; ok is false on cancel.
// The viewer core depends only on this interface, never on a dialog toolkit.
type FileSelector interface {
	Select(filters []Filter) (path string, ok bool)
}

// PromptSelector reads a path from a terminal. An empty line cancels.
type PromptSelector struct {
	In  io.Reader
	Out io.Writer
}

func NewPromptSelector() *PromptSelector {
	return &PromptSelector{In: os.Stdin, Out: os.Stderr}
}

func (s *PromptSelector) Select(filters []Filter) (string, bool) {
	patterns := make([]string, len(filters))
	for i, f := range filters {
		patterns[i] = f.Pattern
	}
	fmt.Fprintf(s.Out, "Open file (%s), empty to cancel: ", strings.Join(patterns, ", "))

	scanner := bufio.NewScanner(s.In)
	if !scanner.Scan() {
		return "", false
	}
	path := strings.TrimSpace(scanner.Text())
	return path, path != ""
}
