//go:build js && wasm

package scroll

import "syscall/js"

type browserWindow struct {
	v js.Value
}

func (w browserWindow) ScrollTo(opts ScrollToOptions) {
	w.v.Call("scrollTo", map[string]any{
		"top":      opts.Top,
		"left":     opts.Left,
		"behavior": string(opts.Behavior),
	})
}

type browserElement struct {
	v js.Value
}

func (e browserElement) ScrollIntoView(opts ScrollIntoViewOptions) {
	e.v.Call("scrollIntoView", map[string]any{
		"behavior": string(opts.Behavior),
		"block":    string(opts.Block),
	})
}

type browserDocument struct {
	v js.Value
}

func (d browserDocument) GetElementByID(id string) (Element, bool) {
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return browserElement{v: el}, true
}

// Browser binds the helpers to the page's window and document.
func Browser() *Helpers {
	global := js.Global()
	return New(
		browserWindow{v: global.Get("window")},
		browserDocument{v: global.Get("document")},
	)
}
