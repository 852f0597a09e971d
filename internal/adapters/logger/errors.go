package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr.Error and reports its own message without the chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain as presented to the operator.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into display entries, outermost first.
// zerr levels with an empty message contribute their metadata to the next entry.
// Joined errors (fmt.Errorf with several %w) are expanded in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	pending := map[string]any{}
	walkError(err, &entries, pending)
	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = map[string]any{}
		}
		maps.Copy(last.Metadata, pending)
	}
	return entries
}

func walkError(err error, entries *[]ErrorEntry, pending map[string]any) {
	for err != nil {
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range multi.Unwrap() {
				walkError(inner, entries, pending)
			}
			return
		}

		m, ok := err.(messager)
		if !ok {
			*entries = append(*entries, ErrorEntry{Message: err.Error(), Metadata: takeMetadata(pending)})
			return
		}

		var meta map[string]any
		if md, ok := err.(metadataer); ok {
			meta = md.Metadata()
		}
		if m.Message() == "" {
			maps.Copy(pending, meta)
		} else {
			merged := takeMetadata(pending)
			if merged == nil {
				merged = map[string]any{}
			}
			maps.Copy(merged, meta)
			*entries = append(*entries, ErrorEntry{Message: m.Message(), Metadata: merged})
		}
		err = errors.Unwrap(err)
	}
}

// takeMetadata drains pending and returns its contents, or nil when empty.
func takeMetadata(pending map[string]any) map[string]any {
	if len(pending) == 0 {
		return nil
	}
	out := maps.Clone(pending)
	clear(pending)
	return out
}

// formatErrorEntries renders entries as an "Error:" line followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any, indent string) []string {
	lines := make([]string, 0, len(meta))
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, meta[key]))
	}
	return lines
}
