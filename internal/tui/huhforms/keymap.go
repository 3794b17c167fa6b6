package huhforms

import (
	"slices"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

var newLineKeys = []string{"shift+enter", "alt+enter", "ctrl+j"}

// CreateKeyMap returns huh's default keymap tuned for the task form.
// shift+enter joins alt+enter and ctrl+j as newline keys in the description,
// minus whichever one is configured as the save key since the form never sees
// it. The priority picker has three options, so its filter is switched off.
func CreateKeyMap(saveKey string) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keys := slices.DeleteFunc(slices.Clone(newLineKeys), func(k string) bool {
		return k == saveKey
	})
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], "new line"),
	)

	keymap.Select.Filter.SetEnabled(false)

	return keymap
}
