package action

import (
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/wirvsvirus/measures-dashboard/consts"
	"github.com/wirvsvirus/measures-dashboard/schema"
	"github.com/wirvsvirus/measures-dashboard/utils"
)

const (
	hoverDateLayout = "02.01.2006"
	lineBreak       = "<br>"
)

// WrapText breaks text into lines of at least width characters, cutting
// only after a space.
func WrapText(text string, width int) string {
	var lines []string
	for len(text) > 0 {
		offset := runeOffset(text, width)
		if offset == -1 {
			lines = append(lines, text)
			break
		}
		next := strings.Index(text[offset:], " ")
		if next == -1 {
			lines = append(lines, text)
			break
		}
		cut := offset + next + 1
		lines = append(lines, text[:cut])
		text = text[cut:]
	}
	return strings.Join(lines, lineBreak)
}

// runeOffset returns the byte offset of the n-th rune, or -1 if text has
// no more than n runes.
func runeOffset(text string, n int) int {
	count := 0
	for i := range text {
		if count == n {
			return i
		}
		count++
	}
	return -1
}

// HoverText renders the tooltip of a marker: label, wrapped details and the
// period the measure is in force.
func HoverText(l *i18n.Localizer, m *schema.ActionMarkerGeometry) (string, error) {
	var period string
	var err error
	data := map[string]string{"Start": m.Start.Format(hoverDateLayout)}
	if m.End.IsZero() {
		period, err = l.Localize(&i18n.LocalizeConfig{MessageID: utils.MessageHoverOpenEnd, TemplateData: data})
	} else {
		data["End"] = m.End.Format(hoverDateLayout)
		period, err = l.Localize(&i18n.LocalizeConfig{MessageID: utils.MessageHoverPeriod, TemplateData: data})
	}
	if err != nil {
		return "", err
	}

	parts := []string{"<b>" + m.Label + "</b>"}
	if m.Details != "" {
		parts = append(parts, WrapText(m.Details, consts.HoverWrapWidth)+lineBreak)
	}
	parts = append(parts, "<i>"+period+"</i>")
	return strings.Join(parts, lineBreak), nil
}

// SegmentText returns the captions at the start, the effect onset and the
// end of a marker. Markers without end date get no end caption.
func SegmentText(l *i18n.Localizer, m *schema.ActionMarkerGeometry) ([]string, error) {
	ids := []string{utils.MessageMarkerStart, utils.MessageMarkerEffect}
	if !m.End.IsZero() {
		ids = append(ids, utils.MessageMarkerEnd)
	}

	captions := make([]string, 0, len(ids))
	for _, id := range ids {
		caption, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			return nil, err
		}
		captions = append(captions, m.Label+lineBreak+caption)
	}
	return captions, nil
}

// Annotate fills hover text and captions of every marker.
func Annotate(l *i18n.Localizer, markers []schema.ActionMarkerGeometry) error {
	for i := range markers {
		text, err := HoverText(l, &markers[i])
		if err != nil {
			return err
		}
		captions, err := SegmentText(l, &markers[i])
		if err != nil {
			return err
		}
		markers[i].HoverText = text
		markers[i].SegmentText = captions
	}
	return nil
}
