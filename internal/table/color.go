package table

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/qa-labs/e2e-suite/internal/report"
)

// ColorHelper provides utilities for coloring test output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Muted returns gray colored text
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// Bold returns bold text
func (c *ColorHelper) Bold(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatStatus returns a coloured label for a scenario status
func (c *ColorHelper) FormatStatus(status report.Status) string {
	switch status {
	case report.StatusPassed:
		return c.Success("✓ PASS")
	case report.StatusFailed:
		return c.Failure("✗ FAIL")
	case report.StatusSkipped:
		return c.Warning("- SKIP")
	default:
		return c.Muted("? " + string(status))
	}
}

// FormatCheck returns a coloured label for a setup check outcome
func (c *ColorHelper) FormatCheck(passed bool) string {
	if passed {
		return c.Success("✓ OK")
	}
	return c.Failure("✗ FAIL")
}

// FormatPercentage returns colored percentage based on value
func (c *ColorHelper) FormatPercentage(value float64) string {
	text := fmt.Sprintf("%.1f%%", value)
	if value == 100.0 {
		return c.Success(text)
	}
	if value >= 90.0 {
		return c.Warning(text)
	}
	return c.Failure(text)
}
