package host

import (
	"golang.org/x/net/html"
)

// Event is dispatched to the listeners of a node and its ancestors.
type Event struct {
	Type          string     // event type, e.g. "click"
	Target        *html.Node // node the event has been dispatched to
	CurrentTarget *html.Node // node whose listeners are currently invoked
	Detail        any        // optional payload
	stopped       bool
}

// NewEvent creates an event of a given type.
func NewEvent(typ string, detail any) *Event {
	return &Event{Type: typ, Detail: detail}
}

// StopPropagation prevents listeners of further ancestors from being invoked.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// Stopped reports wether StopPropagation has been called.
func (ev *Event) Stopped() bool {
	return ev.stopped
}

// Listener handles events.
type Listener func(*Event)

// AddEventListener registers a listener for events of type typ on node n.
// Nil listeners are ignored.
func (doc *Document) AddEventListener(n *html.Node, typ string, l Listener) {
	if n == nil || l == nil {
		return
	}
	if doc.listeners == nil {
		doc.listeners = make(map[*html.Node]map[string][]Listener)
	}
	m := doc.listeners[n]
	if m == nil {
		m = make(map[string][]Listener)
		doc.listeners[n] = m
	}
	m[typ] = append(m[typ], l)
}

// RemoveEventListeners drops all listeners for type typ from node n.
func (doc *Document) RemoveEventListeners(n *html.Node, typ string) {
	if m := doc.listeners[n]; m != nil {
		delete(m, typ)
	}
}

// ListenerCount returns the number of listeners for type typ on node n.
func (doc *Document) ListenerCount(n *html.Node, typ string) int {
	return len(doc.listeners[n][typ])
}

// DispatchEvent invokes the listeners of the target node, then bubbles the
// event up the ancestor chain until a listener stops propagation. Listeners
// run synchronously in registration order. DispatchEvent returns the number
// of listeners invoked.
func (doc *Document) DispatchEvent(target *html.Node, ev *Event) int {
	if target == nil || ev == nil {
		return 0
	}
	ev.Target = target
	count := 0
	for n := target; n != nil && !ev.stopped; n = n.Parent {
		ls := doc.listeners[n][ev.Type]
		if len(ls) == 0 {
			continue
		}
		ev.CurrentTarget = n
		for _, l := range append([]Listener(nil), ls...) {
			l(ev)
			count++
		}
	}
	ev.CurrentTarget = nil
	tracer().Debugf("dispatched %q to %s, %d listener(s)", ev.Type, nodeLabel(target), count)
	return count
}
