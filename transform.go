package pinpoint

import "github.com/go-gl/mathgl/mgl64"

// identityTransform is the identity 4x4 matrix.
var identityTransform = mgl64.Ident4()

// computeLocalTransform computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> Rotate -> Translate(Position)
func computeLocalTransform(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := n.Rotation.Normalize().Mat4()
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// invertTransform computes the inverse of m.
// Returns the identity matrix if m is singular.
func invertTransform(m mgl64.Mat4) mgl64.Mat4 {
	det := m.Det()
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	return m.Inv()
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform mgl64.Mat4, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}
	// Alpha is cheap and changes every frame while popups fade.
	n.worldAlpha = parentAlpha * n.Alpha

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
	n.transformDirty = true
}

// SetScale sets the node's scale on all three axes and marks it dirty.
func (n *Node) SetScale(sx, sy, sz float64) {
	n.Scale = Vec3{sx, sy, sz}
	n.transformDirty = true
}

// SetRotation sets the node's orientation and marks it dirty.
func (n *Node) SetRotation(q mgl64.Quat) {
	n.Rotation = q
	n.transformDirty = true
}

// SetAlpha sets the node's alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p Vec3) Vec3 {
	return mgl64.TransformCoordinate(p, invertTransform(n.worldTransform))
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return mgl64.TransformCoordinate(p, n.worldTransform)
}

// WorldPosition returns the node's origin in world space as of the last update.
func (n *Node) WorldPosition() Vec3 {
	return n.LocalToWorld(Vec3{})
}

// WorldAlpha returns the accumulated alpha as of the last update.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

// rayToLocal converts a world-space ray into this node's local space.
func (n *Node) rayToLocal(origin, dir Vec3) (Vec3, Vec3) {
	inv := invertTransform(n.worldTransform)
	return mgl64.TransformCoordinate(origin, inv), mgl64.TransformNormal(dir, inv)
}
