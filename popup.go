package pinpoint

import "time"

// popupFadeDuration is the length of both the fade-in and the fade-out.
const popupFadeDuration = 300 * time.Millisecond

// LabelPopup is a transient label shown next to a marker. It fades in on
// Open, waits, and fades out on Close, optionally removing itself from its
// parent when the fade-out completes.
//
// Phases move Closed → Opening → Open → Closing → Detached. Open and Close
// reject calls that do not fit the current phase, so two animations never
// drive the same popup at once.
type LabelPopup struct {
	node  *Node
	scene *Scene

	// TargetOpacity is the opacity reached at the end of the fade-in.
	TargetOpacity float64

	phase      Phase
	openAnim   *Animation
	closeAnim  *Animation
	dismissSub *Subscription
	markerID   string
}

// NewLabelPopup creates a closed popup showing label. The label is plain
// text; it is escaped wherever the element is rendered as markup.
func NewLabelPopup(scene *Scene, label string) *LabelPopup {
	if scene == nil {
		panic("pinpoint: popup needs a scene")
	}
	n := NewOverlay("labelpopup", LabelPopupClass, label)
	n.Element.Opacity = 0
	p := &LabelPopup{
		node:          n,
		scene:         scene,
		TargetOpacity: 1,
	}
	n.UserData = p
	return p
}

// Node returns the popup's overlay node.
func (p *LabelPopup) Node() *Node {
	return p.node
}

// Element returns the popup's screen element.
func (p *LabelPopup) Element() *Element {
	return p.node.Element
}

// Phase returns the current lifecycle phase.
func (p *LabelPopup) Phase() Phase {
	return p.phase
}

// Opacity returns the element's current opacity.
func (p *LabelPopup) Opacity() float64 {
	if p.node.Element == nil {
		return 0
	}
	return p.node.Element.Opacity
}

// AnchorOffset returns the popup position relative to its parent.
func (p *LabelPopup) AnchorOffset() Vec3 {
	return p.node.Position
}

// SetAnchorOffset places the popup relative to its parent.
func (p *LabelPopup) SetAnchorOffset(v Vec3) {
	p.node.SetPosition(v.X(), v.Y(), v.Z())
}

// Live reports whether the popup is opening or open.
func (p *LabelPopup) Live() bool {
	return p.phase == PhaseOpening || p.phase == PhaseOpen
}

// Open fades the popup in from 0 to TargetOpacity. With autoClose, the
// first dismiss event outside the popup closes and removes it. Open is
// accepted from Closed and Closing (the fade-out is abandoned) and returns
// false otherwise.
func (p *LabelPopup) Open(autoClose bool) bool {
	switch p.phase {
	case PhaseOpening, PhaseOpen, PhaseDetached:
		return false
	case PhaseClosing:
		p.closeAnim.Cancel()
		p.closeAnim = nil
	}

	target := clamp01(p.TargetOpacity)
	p.setOpacity(0)
	p.setPhase(PhaseOpening)

	var anim *Animation
	anim = p.scene.animator.Run(func(progress float64) {
		p.setOpacity(progress * target)
	}, popupFadeDuration, func() {
		if p.openAnim == anim {
			p.openAnim = nil
			p.setPhase(PhaseOpen)
			p.scene.emitPopupEvent(PopupShown, p.markerID, p.node)
		}
	})
	p.openAnim = anim

	if autoClose {
		p.subscribeDismiss()
	}
	p.scene.emitPopupEvent(PopupOpened, p.markerID, p.node)
	return true
}

// subscribeDismiss registers the one-shot dismiss handler on all four
// dismiss kinds, replacing any previous subscription.
func (p *LabelPopup) subscribeDismiss() {
	p.unsubscribeDismiss()
	var sub *Subscription
	sub = p.scene.dismiss.Subscribe(func(ev DismissEvent) {
		if ev.PathIncludes(p.node) {
			return
		}
		p.openAnim.Cancel()
		p.Close(true)
		sub.Unsubscribe()
	}, AllDismissKinds...)
	p.dismissSub = sub
}

func (p *LabelPopup) unsubscribeDismiss() {
	if p.dismissSub != nil {
		p.dismissSub.Unsubscribe()
		p.dismissSub = nil
	}
}

// Close fades the popup out from its current opacity to 0. When remove is
// set and the fade-out completes, the popup detaches from its parent.
// Close is accepted from Opening and Open and returns false otherwise.
func (p *LabelPopup) Close(remove bool) bool {
	if !p.Live() {
		return false
	}
	p.openAnim.Cancel()
	p.openAnim = nil
	p.unsubscribeDismiss()

	start := p.Opacity()
	p.setPhase(PhaseClosing)

	var anim *Animation
	anim = p.scene.animator.Run(func(progress float64) {
		p.setOpacity(start - progress*start)
	}, popupFadeDuration, func() {
		if p.closeAnim != anim {
			return
		}
		p.closeAnim = nil
		if remove && p.node.Parent != nil {
			p.node.RemoveFromParent()
			p.setPhase(PhaseDetached)
			p.scene.emitPopupEvent(PopupDetached, p.markerID, p.node)
			return
		}
		p.setPhase(PhaseClosed)
		p.scene.emitPopupEvent(PopupClosed, p.markerID, p.node)
	})
	p.closeAnim = anim
	p.scene.emitPopupEvent(PopupClosing, p.markerID, p.node)
	return true
}

// Dispose stops all animations, drops the dismiss subscription and removes
// the popup from its parent immediately.
func (p *LabelPopup) Dispose() {
	if p.phase == PhaseDetached {
		return
	}
	p.openAnim.Cancel()
	p.closeAnim.Cancel()
	p.openAnim, p.closeAnim = nil, nil
	p.unsubscribeDismiss()
	p.node.RemoveFromParent()
	p.setPhase(PhaseDetached)
	p.scene.emitPopupEvent(PopupDetached, p.markerID, p.node)
}

func (p *LabelPopup) setOpacity(v float64) {
	if p.node.Element != nil {
		p.node.Element.Opacity = v
	}
}

func (p *LabelPopup) setPhase(ph Phase) {
	if p.phase == ph {
		return
	}
	logger.Debug().
		Str("marker", p.markerID).
		Stringer("from", p.phase).
		Stringer("to", ph).
		Msg("popup phase")
	p.phase = ph
}
