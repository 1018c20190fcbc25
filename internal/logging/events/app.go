package events

import "github.com/jjconsole/jjconsole/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(repoPath, revset string) {
	logging.Trace("app.start", map[string]interface{}{"repo": repoPath, "revset": revset})
}

// Startup records the full launch context once per run: argv, resolved
// flags, and terminal probe results.
func (AppTracer) Startup(payload map[string]interface{}) {
	logging.Trace("app.startup", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (AppTracer) ViewSwitch(view string) {
	logging.Trace("app.view", map[string]interface{}{"view": view})
}

func (AppTracer) ExecHandoff(args []string) {
	logging.Trace("app.exec", map[string]interface{}{"args": args})
}
