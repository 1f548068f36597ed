package easel

import "slices"

// Listener receives events dispatched through an Observable.
type Listener func(Event)

type listenerEntry struct {
	id uint32
	fn Listener
}

// Observable is a synchronous publish/subscribe channel keyed by event type.
// Listeners run in registration order and all of them return before Dispatch
// does. The zero value is ready to use.
//
// Listener lists are copy-on-write: adding or removing a listener while a
// dispatch is running does not affect that dispatch.
type Observable struct {
	listeners map[string][]listenerEntry
	nextID    uint32
}

// Handle allows removing a registered listener.
type Handle struct {
	id    uint32
	obs   *Observable
	event string
}

// Remove unregisters the listener so it no longer fires. Calling Remove more
// than once, or on the zero Handle, is a no-op.
func (h Handle) Remove() {
	if h.obs == nil {
		return
	}
	h.obs.remove(h.event, h.id)
}

// On registers fn for events of the given type.
func (o *Observable) On(eventType string, fn Listener) Handle {
	if fn == nil {
		panic("easel: nil listener")
	}
	if o.listeners == nil {
		o.listeners = make(map[string][]listenerEntry)
	}
	o.nextID++
	cur := o.listeners[eventType]
	next := make([]listenerEntry, len(cur), len(cur)+1)
	copy(next, cur)
	o.listeners[eventType] = append(next, listenerEntry{id: o.nextID, fn: fn})
	return Handle{id: o.nextID, obs: o, event: eventType}
}

// Dispatch delivers e to every listener registered for eventType.
func (o *Observable) Dispatch(eventType string, e Event) {
	for _, l := range o.listeners[eventType] {
		l.fn(e)
	}
}

// Len returns the number of listeners registered for eventType.
func (o *Observable) Len(eventType string) int {
	return len(o.listeners[eventType])
}

// Clear removes every listener. Outstanding handles become no-ops.
func (o *Observable) Clear() {
	o.listeners = nil
}

func (o *Observable) remove(eventType string, id uint32) {
	cur := o.listeners[eventType]
	i := slices.IndexFunc(cur, func(l listenerEntry) bool { return l.id == id })
	if i < 0 {
		return
	}
	if len(cur) == 1 {
		delete(o.listeners, eventType)
		return
	}
	o.listeners[eventType] = slices.Delete(slices.Clone(cur), i, i+1)
}
