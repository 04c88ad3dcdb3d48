package pinpoint

// MarkerTypeObject is the type tag of point markers.
const MarkerTypeObject = "object"

const (
	defaultMarkerRadius    = 5   // dot radius in pixels
	defaultMarkerHitRadius = 0.5 // pick sphere radius in world units
)

// Marker is a point of interest in the scene. Clicking it shows its label
// in a LabelPopup anchored at the click point.
type Marker struct {
	// ID is the stable identifier the marker was created with.
	ID   string
	Type string

	// Label is the popup text; empty means no popup.
	Label string
	// Link is followed when the popup is clicked; empty means no link.
	Link string
	// OpenInNewTab asks the link opener for a new navigation context.
	OpenInNewTab bool

	node  *Node
	scene *Scene
	popup *LabelPopup
}

// NewMarker creates a marker node. The caller attaches Node() to the scene
// tree.
func NewMarker(scene *Scene, id string) *Marker {
	if scene == nil {
		panic("pinpoint: marker needs a scene")
	}
	n := &Node{
		Name:         id,
		Type:         NodeTypeMarker,
		Interactable: true,
		HitShape:     HitSphere{Radius: defaultMarkerHitRadius},
	}
	nodeDefaults(n)
	n.Radius = defaultMarkerRadius
	m := &Marker{
		ID:           id,
		Type:         MarkerTypeObject,
		OpenInNewTab: true,
		node:         n,
		scene:        scene,
	}
	n.UserData = m
	n.OnClick = m.OnClick
	return m
}

// Node returns the marker's scene node.
func (m *Marker) Node() *Node {
	return m.node
}

// Position returns the marker anchor relative to its parent.
func (m *Marker) Position() Vec3 {
	return m.node.Position
}

// Popup returns the most recently created popup, or nil.
func (m *Marker) Popup() *LabelPopup {
	return m.popup
}

// UpdateFromData replaces the marker state with a snapshot. Missing position
// axes become 0, a missing label or link clears it, and newTab is coerced
// to a boolean. An open popup keeps its text.
func (m *Marker) UpdateFromData(d MarkerData) {
	var pos PositionData
	if d.Position != nil {
		pos = *d.Position
	}
	m.node.SetPosition(pos.X, pos.Y, pos.Z)
	m.Label = d.Label
	m.Link = d.Link
	m.OpenInNewTab = bool(d.NewTab)
}

// OnClick opens a popup at the clicked point when the marker has a label.
// The anchor is PointOnLine when present, else Point, relative to the
// marker position; without an intersection the popup sits on the marker.
// It always reports the event as handled.
func (m *Marker) OnClick(ev ClickEvent) bool {
	var offset Vec3
	if in := ev.Intersection; in != nil {
		at := in.Point
		if in.PointOnLine != nil {
			at = *in.PointOnLine
		}
		offset = at.Sub(m.node.Position)
	}

	logger.Debug().Str("marker", m.ID).Bool("label", m.Label != "").Msg("marker click")
	if m.Label == "" {
		return true
	}

	// One live popup per marker.
	if m.popup != nil && m.popup.Live() {
		m.popup.Close(true)
	}

	popup := NewLabelPopup(m.scene, m.Label)
	popup.markerID = m.ID
	popup.SetAnchorOffset(offset)
	popup.node.OnClick = m.followLink
	m.node.AddChild(popup.node)
	popup.Open(true)
	m.popup = popup
	return true
}

// followLink hands the marker link to the scene's link opener.
func (m *Marker) followLink(ClickEvent) bool {
	if m.Link != "" && m.scene.opener != nil {
		logger.Debug().Str("marker", m.ID).Str("link", m.Link).Bool("newTab", m.OpenInNewTab).Msg("follow link")
		m.scene.opener(m.Link, m.OpenInNewTab)
	}
	return true
}

// Dispose removes any popup and disposes the marker node.
func (m *Marker) Dispose() {
	if m.popup != nil {
		m.popup.Dispose()
		m.popup = nil
	}
	m.node.Dispose()
}
