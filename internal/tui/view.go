package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

const (
	labelColumn    = 28
	categoryColumn = 14
)

func (m model) View() string {
	var body string
	switch m.mode {
	case modeAdd:
		body = m.form.View()
	case modeDetail:
		body = m.detailView()
	case modeInfo:
		body = renderBuildInfoWindow(m.build, m.controller.Owner())
	default:
		body = m.listView()
	}

	if len(m.prompts) > 0 {
		body = m.promptView()
	}

	var b strings.Builder
	b.WriteString(body)
	if banner := m.bannerView(); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	return appStyle.Render(b.String())
}

func (m model) listView() string {
	var b strings.Builder

	b.WriteString("Wallet: " + shortAddress(m.controller.Owner()))
	b.WriteString("   Semester: " + m.categories[m.categoryIdx])
	if m.mode == modeFilter {
		b.WriteString("\n" + m.query.View())
	} else if q := m.query.Value(); q != "" {
		b.WriteString("   Filter: " + q)
	}
	b.WriteString("\n\n")
	b.WriteString(statsBoxStyle.Render(renderStats(m.stats)))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		if len(m.views) == 0 {
			b.WriteString("No transcripts yet. Press a to add one.")
		} else {
			b.WriteString("No transcripts match the filter.")
		}
	}

	for i, v := range m.visible {
		line := fmt.Sprintf("%s %-*s %-*s %2d cr  %s",
			badge(v.State),
			labelColumn, fitText(v.Label, labelColumn),
			categoryColumn, fitText(v.Category, categoryColumn),
			v.Weight,
			valueText(v),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(m.visible)-1 {
			b.WriteString("\n")
		}
	}

	hotKeys := "↑/↓: move  enter: details  a: add  v: verify  d: decrypt  c: copy  /: filter  s: semester  r: reload  t: FHE status  i: about  q: quit"
	if m.mode == modeFilter {
		hotKeys = "enter: apply  esc: clear"
	}

	return renderPage("CONFIDENTIAL TRANSCRIPTS", b.String(), hotKeys)
}

func renderStats(s models.Stats) string {
	return fmt.Sprintf(
		"Average grade: %6.2f   Credits: %3d   Verified: %d/%d\nCoverage:      %6.2f   Projected: %6.2f",
		s.PrimaryMetric, s.TotalWeight, s.VerifiedCount, s.TotalCount,
		s.CoverageAverage, s.ProjectedMetric,
	)
}

func (m model) detailView() string {
	v, ok := m.selected()
	if !ok {
		return renderPage("TRANSCRIPT", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString("ID:        " + v.ID + "\n")
	b.WriteString("Course:    " + v.Label + "\n")
	b.WriteString("Semester:  " + v.Category + "\n")
	b.WriteString("Credits:   " + strconv.FormatInt(v.Weight, 10) + "\n")
	b.WriteString("Owner:     " + v.Owner + "\n")
	b.WriteString("Created:   " + v.CreatedAt.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString("State:     " + v.State.String() + "\n")
	b.WriteString("Grade:     " + valueText(v))

	return renderPage("TRANSCRIPT", b.String(), "v: verify  d: decrypt locally  c: copy grade  esc: back")
}

func (m model) promptView() string {
	p := m.prompts[0]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Wallet signature requested"))
	b.WriteString("\n\n")
	b.WriteString("Action: " + p.action + "\n")
	b.WriteString("Wallet: " + m.controller.Owner())
	if n := len(m.prompts) - 1; n > 0 {
		b.WriteString(fmt.Sprintf("\n\n%d more request(s) waiting", n))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y: sign  n: reject"))

	return overlayBoxStyle.Render(b.String())
}

func (m model) bannerView() string {
	if !m.status.Visible {
		if m.busy > 0 {
			return m.spinner.View()
		}
		return ""
	}

	switch m.status.Kind {
	case models.StatusSuccess:
		return successBanner.Render(m.status.Message)
	case models.StatusError:
		return errorBanner.Render(m.status.Message)
	default:
		return m.spinner.View() + " " + pendingBanner.Render(m.status.Message)
	}
}

func badge(s models.RecordState) string {
	switch s {
	case models.StateVerified:
		return verifiedBadge
	case models.StateLocallyRevealed:
		return localBadge
	default:
		return encryptedBadge
	}
}

func valueText(v models.RecordView) string {
	if v.Value == nil {
		return "***"
	}
	text := strconv.FormatInt(*v.Value, 10)
	if !v.Authoritative {
		text += " (not verified)"
	}
	return text
}
