package tui

import (
	"testing"
)

func TestDefaultKeyMapNoConflicts(t *testing.T) {
	k := DefaultKeyMap()

	seen := map[string]string{}
	add := func(name string, keys []string) {
		for _, kk := range keys {
			if prev, ok := seen[kk]; ok {
				t.Errorf("key %q bound to both %s and %s", kk, prev, name)
			}
			seen[kk] = name
		}
	}

	add("copy", k.Copy.Keys())
	add("delete", k.Delete.Keys())
	add("pin", k.Pin.Keys())
	add("clear-unpinned", k.ClearUnpinned.Keys())
	add("search", k.Search.Keys())
	add("settings", k.Settings.Keys())
	add("open-dir", k.OpenDir.Keys())
	add("quit", k.Quit.Keys())
}

func TestShortHelpCoversCommonActions(t *testing.T) {
	k := DefaultKeyMap()

	if len(k.ShortHelp()) == 0 {
		t.Fatal("short help should not be empty")
	}
	for _, b := range k.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v missing help text", b.Keys())
		}
	}
}
