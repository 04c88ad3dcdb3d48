package pinpoint

import "slices"

// DismissEvent is a global interaction that may close auto-closing popups.
type DismissEvent struct {
	Kind DismissKind
	// Path lists the overlay nodes under the event target, topmost first.
	// Empty for events without a screen position (key presses).
	Path    []*Node
	ScreenX float64
	ScreenY float64
}

// PathIncludes reports whether n is part of the event's target path.
func (e DismissEvent) PathIncludes(n *Node) bool {
	if n == nil {
		return false
	}
	for _, p := range e.Path {
		if p == n {
			return true
		}
	}
	return false
}

type dismissHandler struct {
	id uint32
	fn func(DismissEvent)
}

// DismissChannel is the shared set of global dismiss-event listeners.
// One handler may listen to several kinds; its Subscription removes it from
// all of them at once.
type DismissChannel struct {
	handlers [numDismissKinds][]dismissHandler
	nextID   uint32
}

// Subscription is the handle of a handler registered on a DismissChannel.
type Subscription struct {
	id    uint32
	kinds []DismissKind
	ch    *DismissChannel
}

// Subscribe registers fn for the given kinds, or for every kind when none
// are given.
func (c *DismissChannel) Subscribe(fn func(DismissEvent), kinds ...DismissKind) *Subscription {
	if len(kinds) == 0 {
		kinds = AllDismissKinds
	}
	c.nextID++
	id := c.nextID
	for _, k := range kinds {
		c.handlers[k] = append(c.handlers[k], dismissHandler{id: id, fn: fn})
	}
	logger.Debug().Uint32("subscription", id).Int("kinds", len(kinds)).Msg("dismiss subscribe")
	return &Subscription{id: id, kinds: append([]DismissKind(nil), kinds...), ch: c}
}

// Unsubscribe removes the handler from every kind it listens to.
// Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.ch == nil {
		return
	}
	for _, k := range s.kinds {
		s.ch.handlers[k] = removeDismissHandler(s.ch.handlers[k], s.id)
	}
	logger.Debug().Uint32("subscription", s.id).Msg("dismiss unsubscribe")
	s.ch = nil
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.ch != nil
}

func removeDismissHandler(s []dismissHandler, id uint32) []dismissHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dismissHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// Dispatch delivers ev to every handler registered for its kind, in
// registration order. Handlers may unsubscribe themselves or others while
// the event is being delivered; a handler removed mid-dispatch is skipped.
func (c *DismissChannel) Dispatch(ev DismissEvent) {
	if int(ev.Kind) >= numDismissKinds {
		return
	}
	for _, h := range slices.Clone(c.handlers[ev.Kind]) {
		if !c.registered(ev.Kind, h.id) {
			continue
		}
		h.fn(ev)
	}
}

func (c *DismissChannel) registered(kind DismissKind, id uint32) bool {
	for _, h := range c.handlers[kind] {
		if h.id == id {
			return true
		}
	}
	return false
}

// HandlerCount returns the number of handlers registered for kind.
func (c *DismissChannel) HandlerCount(kind DismissKind) int {
	if int(kind) >= numDismissKinds {
		return 0
	}
	return len(c.handlers[kind])
}
