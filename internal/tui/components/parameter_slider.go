package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// ParameterSlider displays one adjustable simulation input with a visual
// slider bar. Besides stepping with the arrow keys, the slider supports a
// typed edit mode: dollar fields accept $, comma grouping and K/M
// suffixes.
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Unit        string // e.g. "%", "years", "$/mo"
	Format      string // e.g. "%.2f", "%.0f"
	Width       int
	IsFocused   bool
	Description string

	editing    bool
	editBuffer string
	editErr    error
}

// NewParameterSlider creates a new parameter slider.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width.
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state. Losing focus cancels any open edit.
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	if !focused {
		p.CancelEdit()
	}
	return p
}

// WithDescription adds help text below the slider.
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Adjust moves the value by the given number of steps, clamped to the
// range. Negative steps move down.
func (p *ParameterSlider) Adjust(steps int) {
	p.SetValue(p.Value + float64(steps)*p.Step)
}

// Increment increases the value by one step.
func (p *ParameterSlider) Increment() { p.Adjust(1) }

// Decrement decreases the value by one step.
func (p *ParameterSlider) Decrement() { p.Adjust(-1) }

// SetValue sets the value directly, clamping to the range.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value's position within the range.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// IsEditing reports whether the slider is in typed-entry mode.
func (p *ParameterSlider) IsEditing() bool { return p.editing }

// BeginEdit enters typed-entry mode with an empty buffer.
func (p *ParameterSlider) BeginEdit() {
	p.editing = true
	p.editBuffer = ""
	p.editErr = nil
}

// CancelEdit leaves typed-entry mode without changing the value.
func (p *ParameterSlider) CancelEdit() {
	p.editing = false
	p.editBuffer = ""
	p.editErr = nil
}

// TypeRune appends a character to the edit buffer.
func (p *ParameterSlider) TypeRune(r rune) {
	if !p.editing {
		return
	}
	p.editBuffer += string(r)
	p.editErr = nil
}

// Backspace removes the last character from the edit buffer.
func (p *ParameterSlider) Backspace() {
	if !p.editing || p.editBuffer == "" {
		return
	}
	p.editBuffer = p.editBuffer[:len(p.editBuffer)-1]
}

// CommitEdit parses the buffer and applies it. Dollar units go through the
// amount parser, so "$450,000", "450K" and "1.2M" all work; other units
// parse as plain numbers. The parsed value clamps to the range. A parse
// failure keeps edit mode open with the error shown.
func (p *ParameterSlider) CommitEdit() bool {
	if !p.editing {
		return false
	}

	text := strings.TrimSpace(p.editBuffer)
	if text == "" {
		p.CancelEdit()
		return true
	}

	var value float64
	if strings.HasPrefix(p.Unit, "$") {
		amount, err := output.ParseAmount(text)
		if err != nil {
			p.editErr = err
			return false
		}
		value = amount.InexactFloat64()
	} else {
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
		if err != nil {
			p.editErr = fmt.Errorf("invalid number %q", text)
			return false
		}
		value = parsed
	}

	p.SetValue(value)
	p.editing = false
	p.editBuffer = ""
	p.editErr = nil
	return true
}

// Render returns the styled parameter slider.
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("\n")

	content.WriteString(p.renderValue())
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	rangeText := fmt.Sprintf("%s  ─  %s", p.formatValue(p.Min), p.formatValue(p.Max))
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(rangeText))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	if p.editErr != nil {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render(p.editErr.Error()))
	}

	return content.String()
}

// renderValue shows either the current value or the edit buffer.
func (p *ParameterSlider) renderValue() string {
	if p.editing {
		editStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorAccent).
			Bold(true)
		return editStyle.Render("› " + p.editBuffer + "▌")
	}

	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	return valueStyle.Render(p.formatValue(p.Value))
}

// formatValue renders a value with the slider's format and unit. Dollar
// units group thousands instead of using the printf format.
func (p *ParameterSlider) formatValue(value float64) string {
	if strings.HasPrefix(p.Unit, "$") {
		return output.FormatSweepValue(value, p.Unit)
	}
	s := fmt.Sprintf(p.Format, value)
	if p.Unit != "" {
		s += p.Unit
	}
	return s
}

// renderSliderBar creates the visual slider bar.
func (p *ParameterSlider) renderSliderBar() string {
	percentage := p.Percentage()
	filled := int(math.Round(float64(p.Width) * percentage))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	trackStyle := tuistyles.SliderTrackStyle
	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")

	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))

	if empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}

	bar.WriteString("]")
	return bar.String()
}

// RenderCompact returns a single-line version for dense lists.
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	value := p.formatValue(p.Value)
	if p.editing {
		value = "› " + p.editBuffer + "▌"
	}

	label := labelStyle.Render(p.Label + ":")
	return fmt.Sprintf("%s %s %s", label, valueStyle.Render(value), p.renderMiniSliderBar(10))
}

// renderMiniSliderBar creates a compact slider bar.
func (p *ParameterSlider) renderMiniSliderBar(width int) string {
	percentage := p.Percentage()
	filled := int(math.Round(float64(width) * percentage))

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
