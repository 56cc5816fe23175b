// Package scroll positions the browser viewport.
//
// The helpers are commands: they hand a request to the host and return
// immediately. Animation runs inside the host and is never awaited, so
// nothing is reported back to the caller.
package scroll

type Behavior string

const (
	BehaviorSmooth  Behavior = "smooth"
	BehaviorInstant Behavior = "instant"
)

// Block is the vertical alignment used by ScrollIntoView.
type Block string

const BlockStart Block = "start"

type ScrollToOptions struct {
	Top      float64
	Left     float64
	Behavior Behavior
}

type ScrollIntoViewOptions struct {
	Behavior Behavior
	Block    Block
}

// Window is the part of the host viewport the helpers drive.
type Window interface {
	ScrollTo(opts ScrollToOptions)
}

type Element interface {
	ScrollIntoView(opts ScrollIntoViewOptions)
}

// Document looks elements up by id. ok is false when nothing matches.
type Document interface {
	GetElementByID(id string) (el Element, ok bool)
}

type Helpers struct {
	window   Window
	document Document
}

func New(window Window, document Document) *Helpers {
	return &Helpers{
		window:   window,
		document: document,
	}
}

// ToTop scrolls the viewport to (0,0) with smooth motion.
func (h *Helpers) ToTop() {
	h.window.ScrollTo(ScrollToOptions{Top: 0, Left: 0, Behavior: BehaviorSmooth})
}

// ToTopInstant jumps the viewport to (0,0) without animation.
func (h *Helpers) ToTopInstant() {
	h.window.ScrollTo(ScrollToOptions{Top: 0, Left: 0, Behavior: BehaviorInstant})
}

// ToElement smoothly brings the element with the given id to the top of the
// viewport. An unknown id is a no-op.
func (h *Helpers) ToElement(id string) {
	el, ok := h.document.GetElementByID(id)
	if !ok {
		return
	}
	el.ScrollIntoView(ScrollIntoViewOptions{Behavior: BehaviorSmooth, Block: BlockStart})
}
