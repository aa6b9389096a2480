// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package respx

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("respx: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

// Len returns the number of handlers in the chain for evt.
func (g *HandlerGroup) Len(evt Event) int {
	i := int(evt)
	if i < len(g.handlers) {
		return len(g.handlers[i])
	}
	return 0
}

func (g *HandlerGroup) run(evt Event, c *Call) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, c)
	}
}

func run(chain []Handler, evt Event, c *Call) {
	for _, h := range chain {
		h.Handle(evt, c)
	}
}

// A Handler handles the occurrence of an event during a call.
type Handler interface {
	Handle(Event, *Call)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Call)

// Handle calls f(evt, c).
func (f HandlerFunc) Handle(evt Event, c *Call) {
	f(evt, c)
}
