package transcriber

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/unyfilm/subgen/internal/subtitle"
)

// engineOutput models the whisper.cpp JSON sidecar. Only the fields the
// pipeline consumes are declared.
type engineOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseEngineOutput converts the engine JSON into segments. Segments with
// empty text after trimming are dropped. The engine is supposed to emit
// segments in start-time order; that is verified here rather than trusted,
// and out-of-order output is stably re-sorted.
func parseEngineOutput(data []byte) ([]subtitle.Segment, Info, error) {
	var out engineOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, Info{}, fmt.Errorf("decode engine output: %w", err)
	}

	segments := make([]subtitle.Segment, 0, len(out.Transcription))
	for _, item := range out.Transcription {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		segments = append(segments, subtitle.Segment{
			Start: float64(item.Offsets.From) / 1000,
			End:   float64(item.Offsets.To) / 1000,
			Text:  text,
		})
	}

	if !sort.SliceIsSorted(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	}) {
		sort.SliceStable(segments, func(i, j int) bool {
			return segments[i].Start < segments[j].Start
		})
	}

	info := Info{Language: out.Result.Language}
	if len(segments) > 0 {
		info.Duration = segments[len(segments)-1].End
	}
	return segments, info, nil
}
