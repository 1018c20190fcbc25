package events

import "github.com/jjconsole/jjconsole/internal/logging"

type DialogTracer struct{}

var Dialog = DialogTracer{}

func (DialogTracer) Open(kind, title string) {
	logging.Trace("dialog.open", map[string]interface{}{"kind": kind, "title": title})
}

func (DialogTracer) Close(kind string, confirmed bool, values int) {
	logging.Trace("dialog.close", map[string]interface{}{
		"kind": kind, "confirmed": confirmed, "values": values,
	})
}
