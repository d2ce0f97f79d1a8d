// Package tui implements the interactive terminal interface: two operand
// fields, a styled product view, and a system status line.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/mulcalc/internal/bignum"
	"github.com/agbru/mulcalc/internal/decimal"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/sysmon"
)

// statusInterval is the refresh period of the system status line.
const statusInterval = 2 * time.Second

// Shown instead of the full numeral once it stops fitting comfortably.
const productPreviewDigits = 60

type statusMsg sysmon.Stats

type model struct {
	inputs  [2]textinput.Model
	focus   int
	product string
	digits  int
	elapsed time.Duration
	inerr   error
	stats   sysmon.Stats
	styles  styles
	width   int
}

func newModel() model {
	m := model{styles: newStyles()}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = "0"
		in.Prompt = "> "
		in.CharLimit = 2466 // decimal digits of 2^8192-1
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m
}

// Run drives the interactive interface until the user quits or ctx ends.
// The returned code follows the application exit-code conventions.
func Run(ctx context.Context) int {
	p := tea.NewProgram(newModel(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, statusTick())
}

func statusTick() tea.Cmd {
	return tea.Tick(statusInterval, func(time.Time) tea.Msg {
		return statusMsg(sysmon.Sample())
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case statusMsg:
		m.stats = sysmon.Stats(msg)
		return m, statusTick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			m.focus = (m.focus + 1) % len(m.inputs)
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case tea.KeyEnter:
			m.multiply()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// multiply parses both fields and computes the product, recording any
// input error instead of a result.
func (m *model) multiply() {
	m.product, m.inerr = "", nil

	var a, b bignum.Operand
	// The trailing newline makes an empty field the zero numeral.
	if err := decimal.ParseString(m.inputs[0].Value()+"\n", a[:]); err != nil {
		m.inerr = apperrors.WrapError(err, "first operand")
		return
	}
	if err := decimal.ParseString(m.inputs[1].Value()+"\n", b[:]); err != nil {
		m.inerr = apperrors.WrapError(err, "second operand")
		return
	}

	start := time.Now()
	p := bignum.Mul(&a, &b)
	m.elapsed = time.Since(start)
	m.product = decimal.Format(p[:])
	m.digits = len(m.product)
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.title.Render("mulcalc — 8192-bit multiplier"))
	sb.WriteString("\n\n")

	labels := [2]string{"Multiplicand", "Multiplier"}
	for i := range m.inputs {
		sb.WriteString(m.styles.label.Render(labels[i]))
		sb.WriteString("\n")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	switch {
	case m.inerr != nil:
		sb.WriteString(m.styles.errText.Render(fmt.Sprintf("✗ %v", m.inerr)))
		sb.WriteString("\n")
	case m.product != "":
		sb.WriteString(m.styles.frame.Render(m.styles.product.Render(m.preview())))
		sb.WriteString("\n")
		sb.WriteString(m.styles.status.Render(
			fmt.Sprintf("%d digits in %s", m.digits, m.elapsed)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.status.Render(
		fmt.Sprintf("cpu %.0f%%  mem %.0f%%", m.stats.CPUPercent, m.stats.MemPercent)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.help.Render("tab: switch field • enter: multiply • esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// preview truncates very long products for display, keeping both ends.
func (m model) preview() string {
	if m.digits <= productPreviewDigits {
		return m.product
	}
	edge := productPreviewDigits / 2
	return m.product[:edge] + "…" + m.product[m.digits-edge:]
}
