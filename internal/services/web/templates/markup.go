package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Components in this package are hand-written templ.ComponentFunc values in
// place of generated .templ output; markup is the writer they share.
//
// markup writes HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// component adapts a markup writer function to templ.Component.
func component(build func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		build(ctx, m)
		return m.err
	})
}

// children renders the components passed with templ.WithChildren.
func children(ctx context.Context, m *markup) {
	m.render(templ.ClearChildren(ctx), templ.GetChildren(ctx))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
