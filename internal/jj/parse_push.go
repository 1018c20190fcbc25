package jj

import "strings"

// pushActionPrefixes is the fixed table of sentences a push dry-run emits,
// one line per bookmark movement.
var pushActionPrefixes = []struct {
	prefix string
	kind   PushActionKind
}{
	{"Move forward bookmark ", PushMoveForward},
	{"Move sideways bookmark ", PushMoveSideways},
	{"Move backward bookmark ", PushMoveBackward},
	{"Add bookmark ", PushAdd},
	{"Delete bookmark ", PushDelete},
}

const nothingChangedSentinel = "Nothing changed."

// ParsePushDryRun classifies a push dry-run report. "Nothing changed."
// anywhere short-circuits to the no-op result. Lines matching no prefix
// are ignored, but when the whole output yields zero actions and no
// sentinel, the result is explicitly unrecognized so callers can fall
// back to showing the raw text instead of reporting nothing-to-do.
func ParsePushDryRun(output string) PushPreview {
	var preview PushPreview
	sawAnyLine := false
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sawAnyLine = true
		if strings.Contains(line, nothingChangedSentinel) {
			return PushPreview{NothingChanged: true}
		}
		if action, ok := parsePushActionLine(line); ok {
			preview.Actions = append(preview.Actions, action)
		}
	}
	if len(preview.Actions) == 0 && sawAnyLine {
		preview.Unrecognized = true
	}
	return preview
}

func parsePushActionLine(line string) (PushAction, bool) {
	for _, entry := range pushActionPrefixes {
		if !strings.HasPrefix(line, entry.prefix) {
			continue
		}
		rest := strings.TrimSuffix(line[len(entry.prefix):], ":")
		action := PushAction{Kind: entry.kind}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return PushAction{}, false
		}
		action.Bookmark = fields[0]
		for i := 1; i < len(fields)-1; i++ {
			switch fields[i] {
			case "from":
				action.From = fields[i+1]
			case "to":
				action.To = fields[i+1]
			}
		}
		return action, true
	}
	return PushAction{}, false
}
