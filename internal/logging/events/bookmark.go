package events

import "github.com/jjconsole/jjconsole/internal/logging"

type BookmarkTracer struct{}

var Bookmark = BookmarkTracer{}

func (BookmarkTracer) Loaded(count int) {
	logging.Trace("bookmark.loaded", map[string]interface{}{"count": count})
}

func (BookmarkTracer) Create(name, target string) {
	logging.Trace("bookmark.create", map[string]interface{}{"name": name, "target": target})
}

func (BookmarkTracer) Move(name, target string) {
	logging.Trace("bookmark.move", map[string]interface{}{"name": name, "target": target})
}

func (BookmarkTracer) Delete(name string) {
	logging.Trace("bookmark.delete", map[string]interface{}{"name": name})
}

func (BookmarkTracer) Rename(oldName, newName string) {
	logging.Trace("bookmark.rename", map[string]interface{}{"old": oldName, "new": newName})
}

func (BookmarkTracer) Track(ref string, track bool) {
	logging.Trace("bookmark.track", map[string]interface{}{"ref": ref, "track": track})
}

func (BookmarkTracer) Push(names []string, allowNew bool) {
	logging.Trace("bookmark.push", map[string]interface{}{"names": names, "allowNew": allowNew})
}

func (BookmarkTracer) PushPreview(names []string, actions int, nothing bool) {
	logging.Trace("bookmark.push.preview", map[string]interface{}{
		"names": names, "actions": actions, "nothing": nothing,
	})
}
