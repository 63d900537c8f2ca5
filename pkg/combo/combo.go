// Package combo turns sequences of keystrokes into commands: "dd" deletes,
// "yy" yanks. A key that fits no combo resets the buffer.
package combo

// Combo is a fully entered key combination.
type Combo int

const (
	Delete Combo = iota
	Yank
)

type node struct {
	key   string
	combo Combo
	more  []node
}

var tree = []node{
	{key: "d", more: []node{{key: "d", combo: Delete}}},
	{key: "y", more: []node{{key: "y", combo: Yank}}},
}

// Buffer tracks a partially entered combo between keystrokes.
type Buffer struct {
	cursor []node
}

// Feed advances the buffer by one key and reports a combo when one
// completes. Keys are bubbletea key strings.
func (b *Buffer) Feed(key string) (Combo, bool) {
	cursor := b.cursor
	if cursor == nil {
		cursor = tree
	}
	for _, n := range cursor {
		if n.key != key {
			continue
		}
		if n.more == nil {
			b.Clear()
			return n.combo, true
		}
		b.cursor = n.more
		return 0, false
	}
	b.Clear()
	return 0, false
}

// Pending reports whether the buffer is in the middle of a combo.
func (b *Buffer) Pending() bool { return b.cursor != nil }

func (b *Buffer) Clear() { b.cursor = nil }
