package events

import "github.com/jjconsole/jjconsole/internal/logging"

type OpTracer struct{}

var Op = OpTracer{}

func (OpTracer) Loaded(count int) {
	logging.Trace("op.loaded", map[string]interface{}{"count": count})
}

func (OpTracer) Undo() {
	logging.Trace("op.undo", nil)
}

func (OpTracer) Redo(target string) {
	logging.Trace("op.redo", map[string]interface{}{"target": target})
}

func (OpTracer) Restore(target string) {
	logging.Trace("op.restore", map[string]interface{}{"target": target})
}
