package pinpoint

import "testing"

func TestDismissSubscribeAllKinds(t *testing.T) {
	var ch DismissChannel
	var got []DismissKind
	ch.Subscribe(func(ev DismissEvent) { got = append(got, ev.Kind) })

	for _, k := range AllDismissKinds {
		if ch.HandlerCount(k) != 1 {
			t.Errorf("HandlerCount(%s) = %d, want 1", k, ch.HandlerCount(k))
		}
		ch.Dispatch(DismissEvent{Kind: k})
	}
	if len(got) != len(AllDismissKinds) {
		t.Fatalf("got %d events, want %d", len(got), len(AllDismissKinds))
	}
	for i, k := range AllDismissKinds {
		if got[i] != k {
			t.Errorf("event %d kind = %s, want %s", i, got[i], k)
		}
	}
}

func TestDismissSubscribeSelectedKinds(t *testing.T) {
	var ch DismissChannel
	calls := 0
	ch.Subscribe(func(DismissEvent) { calls++ }, DismissKeyDown)

	ch.Dispatch(DismissEvent{Kind: DismissPointerDown})
	ch.Dispatch(DismissEvent{Kind: DismissKeyDown})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if ch.HandlerCount(DismissPointerDown) != 0 {
		t.Error("pointerdown should have no handlers")
	}
}

func TestDismissUnsubscribeRemovesFromAllKinds(t *testing.T) {
	var ch DismissChannel
	calls := 0
	sub := ch.Subscribe(func(DismissEvent) { calls++ }, AllDismissKinds...)
	keep := ch.Subscribe(func(DismissEvent) {}, AllDismissKinds...)

	sub.Unsubscribe()
	if sub.Active() {
		t.Error("subscription should be inactive")
	}
	if !keep.Active() {
		t.Error("other subscription should stay active")
	}
	for _, k := range AllDismissKinds {
		if ch.HandlerCount(k) != 1 {
			t.Errorf("HandlerCount(%s) = %d, want 1", k, ch.HandlerCount(k))
		}
		ch.Dispatch(DismissEvent{Kind: k})
	}
	if calls != 0 {
		t.Errorf("removed handler called %d times", calls)
	}
}

func TestDismissUnsubscribeIdempotent(t *testing.T) {
	var ch DismissChannel
	sub := ch.Subscribe(func(DismissEvent) {})
	sub.Unsubscribe()
	sub.Unsubscribe() // should not panic

	var nilSub *Subscription
	nilSub.Unsubscribe() // should not panic
	if nilSub.Active() {
		t.Error("nil subscription should not be active")
	}
}

func TestDismissUnsubscribeDuringDispatch(t *testing.T) {
	var ch DismissChannel
	var order []string
	var first, second *Subscription
	first = ch.Subscribe(func(DismissEvent) {
		order = append(order, "first")
		first.Unsubscribe()
		second.Unsubscribe()
	})
	second = ch.Subscribe(func(DismissEvent) {
		order = append(order, "second")
	})
	third := ch.Subscribe(func(DismissEvent) {
		order = append(order, "third")
	})

	ch.Dispatch(DismissEvent{Kind: DismissWheel})

	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Errorf("order = %v, want [first third]", order)
	}
	if !third.Active() {
		t.Error("third should still be active")
	}
	for _, k := range AllDismissKinds {
		if ch.HandlerCount(k) != 1 {
			t.Errorf("HandlerCount(%s) = %d, want 1", k, ch.HandlerCount(k))
		}
	}
}

func TestDismissSubscribeDuringDispatchJoinsNextEvent(t *testing.T) {
	var ch DismissChannel
	lateCalls := 0
	ch.Subscribe(func(DismissEvent) {
		ch.Subscribe(func(DismissEvent) { lateCalls++ }, DismissKeyDown)
	}, DismissKeyDown)

	ch.Dispatch(DismissEvent{Kind: DismissKeyDown})
	if lateCalls != 0 {
		t.Errorf("late handler called during the event that added it")
	}
}

func TestDismissDispatchUnknownKind(t *testing.T) {
	var ch DismissChannel
	ch.Subscribe(func(DismissEvent) { t.Error("handler should not run") })
	ch.Dispatch(DismissEvent{Kind: DismissKind(99)})
	if ch.HandlerCount(DismissKind(99)) != 0 {
		t.Error("unknown kind should report 0 handlers")
	}
}

func TestDismissEventPathIncludes(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	ev := DismissEvent{Path: []*Node{a}}

	if !ev.PathIncludes(a) {
		t.Error("path should include a")
	}
	if ev.PathIncludes(b) {
		t.Error("path should not include b")
	}
	if ev.PathIncludes(nil) {
		t.Error("path should not include nil")
	}
	if (DismissEvent{}).PathIncludes(a) {
		t.Error("empty path includes nothing")
	}
}

func TestDismissKindString(t *testing.T) {
	tests := []struct {
		kind DismissKind
		want string
	}{
		{DismissPointerDown, "pointerdown"},
		{DismissTouchStart, "touchstart"},
		{DismissKeyDown, "keydown"},
		{DismissWheel, "wheel"},
		{DismissKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
