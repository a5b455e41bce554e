// Package model evaluates node hierarchies with keyframed rotation and
// scale into world matrices.
package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/matrixlab/pkg/math"
)

var (
	ErrDuplicateNode = errors.New("duplicate node name")
	ErrUnknownNode   = errors.New("unknown node")
	ErrCycle         = errors.New("node hierarchy has a cycle")
)

// Node is one joint of a hierarchy. Position, rotation and scale are
// inherited by children; Offset and Matrix only move the node's own
// vertices.
type Node struct {
	Name   string
	Parent string // empty for a root

	Position math.Vec3
	RotAxis  math.Vec3
	RotAngle float32 // degrees, ignored when RotKeys is set
	Scale    math.Vec3

	Offset math.Vec3
	Matrix math.Mat3

	RotKeys   []RotKey
	ScaleKeys []ScaleKey
}

// NewNode returns a node with unit scale and an identity vertex matrix.
func NewNode(name, parent string) Node {
	return Node{
		Name:   name,
		Parent: parent,
		Scale:  math.Vec3{X: 1, Y: 1, Z: 1},
		Matrix: math.Identity3(),
	}
}

// Hierarchy indexes nodes by name. Parents must exist and the parent chain
// must be acyclic.
type Hierarchy struct {
	nodes  []Node
	byName map[string]int
}

// NewHierarchy validates the node set.
func NewHierarchy(nodes []Node) (*Hierarchy, error) {
	h := &Hierarchy{nodes: nodes, byName: make(map[string]int, len(nodes))}
	for i, n := range nodes {
		if _, dup := h.byName[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
		}
		h.byName[n.Name] = i
	}
	for _, n := range nodes {
		if n.Parent != "" {
			if _, ok := h.byName[n.Parent]; !ok {
				return nil, fmt.Errorf("%w: parent %q of %q", ErrUnknownNode, n.Parent, n.Name)
			}
		}
		// walk up at most len(nodes) steps
		cur, steps := n, 0
		for cur.Parent != "" {
			if steps++; steps > len(nodes) {
				return nil, fmt.Errorf("%w: at %q", ErrCycle, n.Name)
			}
			cur = nodes[h.byName[cur.Parent]]
		}
	}
	return h, nil
}

// Len returns the number of nodes.
func (h *Hierarchy) Len() int { return len(h.nodes) }

// HasAnimation reports whether any node has more than one keyframe.
func (h *Hierarchy) HasAnimation() bool {
	for i := range h.nodes {
		if len(h.nodes[i].RotKeys) > 1 || len(h.nodes[i].ScaleKeys) > 1 {
			return true
		}
	}
	return false
}

// LocalMatrix returns Position * Rotation * Scale * AnimScale for n at
// time. A zero rotation axis means no rotation.
func LocalMatrix(n *Node, time float32) math.Mat4 {
	local := math.Translate(n.Position.X, n.Position.Y, n.Position.Z)

	switch {
	case len(n.RotKeys) > 0:
		local = local.Mul(InterpolateRotKeys(n.RotKeys, time).Mat4())
	case n.RotAngle != 0:
		if axis, err := n.RotAxis.NormalizeChecked(); err == nil {
			local = local.Mul(math.RotateAxis(axis, n.RotAngle))
		}
	}

	local = local.Mul(math.Scale(n.Scale.X, n.Scale.Y, n.Scale.Z))
	if len(n.ScaleKeys) > 0 {
		s := InterpolateScaleKeys(n.ScaleKeys, time)
		local = local.Mul(math.Scale(s.X, s.Y, s.Z))
	}
	return local
}

// WorldMatrix returns parent world * local for the named node.
func (h *Hierarchy) WorldMatrix(name string, time float32) (math.Mat4, error) {
	i, ok := h.byName[name]
	if !ok {
		return math.Mat4{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	n := &h.nodes[i]
	world := LocalMatrix(n, time)
	for n.Parent != "" {
		n = &h.nodes[h.byName[n.Parent]]
		world = LocalMatrix(n, time).Mul(world)
	}
	return world, nil
}

// VertexMatrix returns the matrix applied to the node's own vertices:
// world * Translate(Offset) * Matrix.
func (h *Hierarchy) VertexMatrix(name string, time float32) (math.Mat4, error) {
	world, err := h.WorldMatrix(name, time)
	if err != nil {
		return math.Mat4{}, err
	}
	n := &h.nodes[h.byName[name]]
	return world.
		Mul(math.Translate(n.Offset.X, n.Offset.Y, n.Offset.Z)).
		Mul(math.FromMat3x3(n.Matrix)), nil
}
