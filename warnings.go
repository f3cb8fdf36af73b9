package panelizer

import (
	"fmt"
	"strings"
)

// Warning reports a non-fatal issue met while processing: a page that could
// not be decoded (and was skipped), or a panel whose reading-order placement
// was ambiguous. Warnings never abort a batch.
type Warning struct {
	// Page is the 1-based page number the warning refers to.
	Page int

	// Panel is the reading-order index of the affected panel, or -1 when
	// the warning concerns the whole page.
	Panel int

	// Message describes the condition.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Panel >= 0 {
		return fmt.Sprintf("page %d, panel %d: %s", w.Page, w.Panel, w.Message)
	}
	return fmt.Sprintf("page %d: %s", w.Page, w.Message)
}

// FormatWarnings joins warnings into a newline-separated list for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
