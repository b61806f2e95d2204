package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOMRewriter_Rewrite(t *testing.T) {
	var r DOMRewriter

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "relative link made absolute",
			in:   `<a href="/wiki/X">X</a>`,
			want: `<a href="https://en.wikipedia.org/wiki/X">X</a>`,
		},
		{
			name: "href after other attributes",
			in:   `<a class="mw-redirect" href="/wiki/Y">Y</a>`,
			want: `<a class="mw-redirect" href="https://en.wikipedia.org/wiki/Y">Y</a>`,
		},
		{
			name: "anchors and absolute links untouched",
			in:   `<a href="#cite">1</a><a href="https://b.org">b</a>`,
			want: `<a href="#cite">1</a><a href="https://b.org">b</a>`,
		},
		{
			name: "no anchors returned as is",
			in:   `<p>text</p>`,
			want: `<p>text</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Rewrite(tt.in, base))
		})
	}
}

func TestDOMRewriter_Idempotent(t *testing.T) {
	var r DOMRewriter
	in := `<div><a href="/wiki/A">A</a><a href="#b">b</a></div>`

	once := r.Rewrite(in, base)
	assert.Equal(t, once, r.Rewrite(once, base))
}
