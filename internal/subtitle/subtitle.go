package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Segment is one timed span of recognized speech.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// FormatTimestamp converts a non-negative seconds offset into the SRT
// timestamp form HH:MM:SS,mmm. Hours are zero-padded to two digits but
// not capped.
func FormatTimestamp(seconds float64) string {
	ms := int64(math.Round(seconds * 1000))
	h := ms / 3600000
	m := (ms % 3600000) / 60000
	s := (ms % 60000) / 1000
	rem := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, rem)
}

// ParseTimestamp converts an SRT or VTT timestamp back into seconds.
// Both the comma and period millisecond separators are accepted.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// RenderSRT serializes segments into an SRT document in input order,
// assigning 1-based cue indexes. Text is trimmed; nothing is reordered,
// merged or deduplicated. An empty input produces an empty document.
func RenderSRT(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("\n")
		b.WriteString(FormatTimestamp(seg.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(seg.End))
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(seg.Text))
		b.WriteString("\n\n")
	}
	return b.String()
}

// ParseSRT reads an SRT document back into segments.
func ParseSRT(doc string) ([]Segment, error) {
	content := strings.TrimSpace(strings.ReplaceAll(doc, "\r\n", "\n"))
	if content == "" {
		return nil, nil
	}

	var segments []Segment
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf("malformed cue block %q", block)
		}
		timing := lines[1]
		parts := strings.Split(timing, "-->")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed timing line %q", timing)
		}
		start, err := ParseTimestamp(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := ParseTimestamp(parts[1])
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], "\n"),
		})
	}
	return segments, nil
}

// SRTToVTT derives a WebVTT document from an SRT document. The conversion
// is purely textual: a WEBVTT header is prepended and the millisecond
// separator on cue timing lines changes from comma to period. Cue count
// and cue text are preserved byte for byte.
func SRTToVTT(srt string) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	if strings.TrimSpace(srt) == "" {
		return b.String()
	}
	lines := strings.Split(srt, "\n")
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			line = strings.ReplaceAll(line, ",", ".")
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
