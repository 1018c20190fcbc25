package events

import "github.com/jjconsole/jjconsole/internal/logging"

type RevisionTracer struct{}

var Revision = RevisionTracer{}

func (RevisionTracer) Loaded(revset string, count int) {
	logging.Trace("revision.loaded", map[string]interface{}{"revset": revset, "count": count})
}

func (RevisionTracer) New(parents []string) {
	logging.Trace("revision.new", map[string]interface{}{"parents": parents})
}

func (RevisionTracer) Edit(target string) {
	logging.Trace("revision.edit", map[string]interface{}{"target": target})
}

func (RevisionTracer) Abandon(target string) {
	logging.Trace("revision.abandon", map[string]interface{}{"target": target})
}

func (RevisionTracer) Describe(target string) {
	logging.Trace("revision.describe", map[string]interface{}{"target": target})
}

func (RevisionTracer) Squash(from, into string) {
	logging.Trace("revision.squash", map[string]interface{}{"from": from, "into": into})
}

func (RevisionTracer) Absorb(from string) {
	logging.Trace("revision.absorb", map[string]interface{}{"from": from})
}

func (RevisionTracer) Rebase(source, destination string, branch bool) {
	logging.Trace("revision.rebase", map[string]interface{}{
		"source": source, "destination": destination, "branch": branch,
	})
}

func (RevisionTracer) Duplicate(target, created string) {
	logging.Trace("revision.duplicate", map[string]interface{}{"target": target, "created": created})
}
