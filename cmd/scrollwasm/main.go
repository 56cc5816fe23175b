//go:build js && wasm

// Command scrollwasm exposes the scroll helpers to page scripts as
// scrollToTop(), scrollToTopInstant() and scrollToElement(id).
package main

import (
	"syscall/js"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/scroll"
)

func main() {
	h := scroll.Browser()
	global := js.Global()

	global.Set("scrollToTop", js.FuncOf(func(js.Value, []js.Value) any {
		h.ToTop()
		return nil
	}))
	global.Set("scrollToTopInstant", js.FuncOf(func(js.Value, []js.Value) any {
		h.ToTopInstant()
		return nil
	}))
	global.Set("scrollToElement", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 || args[0].Type() != js.TypeString {
			return nil
		}
		h.ToElement(args[0].String())
		return nil
	}))

	// Keep the Go runtime alive so the callbacks stay valid.
	select {}
}
