package combo

import (
	"testing"

	"github.com/matryer/is"
)

func TestBuffer_Feed(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want Combo
		ok   bool
	}{
		{name: "dd deletes", keys: []string{"d", "d"}, want: Delete, ok: true},
		{name: "yy yanks", keys: []string{"y", "y"}, want: Yank, ok: true},
		{name: "single key is pending", keys: []string{"d"}, ok: false},
		{name: "mismatch resets", keys: []string{"d", "y"}, ok: false},
		{name: "unknown key", keys: []string{"x"}, ok: false},
		{name: "reset then complete", keys: []string{"d", "x", "d", "d"}, want: Delete, ok: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			var b Buffer
			var got Combo
			var ok bool
			for _, k := range c.keys {
				got, ok = b.Feed(k)
			}
			is.Equal(ok, c.ok)
			if c.ok {
				is.Equal(got, c.want)
			}
		})
	}
}

func TestBuffer_Pending(t *testing.T) {
	is := is.New(t)

	var b Buffer
	is.True(!b.Pending())

	b.Feed("d")
	is.True(b.Pending())

	b.Feed("d")
	is.True(!b.Pending())

	b.Feed("y")
	is.True(b.Pending())
	b.Clear()
	is.True(!b.Pending())
}
