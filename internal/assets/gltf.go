package assets

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/arena/internal/logger"
	"github.com/Faultbox/arena/pkg/math"
)

// ErrNoTriangles is returned when a model holds no triangle geometry.
var ErrNoTriangles = errors.New("model has no triangle primitives")

// LoadTriangles opens a glTF or GLB file and flattens every triangle
// primitive reachable from the default scene into a world-space triangle
// soup. Files without a scene graph are read mesh by mesh, untransformed.
func LoadTriangles(path string) ([]math.Vec3, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return ExtractTriangles(doc)
}

// ExtractTriangles flattens the triangle primitives of an opened document.
func ExtractTriangles(doc *gltf.Document) ([]math.Vec3, error) {
	var soup []math.Vec3

	roots := sceneRoots(doc)
	if len(roots) == 0 {
		for i, m := range doc.Meshes {
			tris, err := meshTriangles(doc, m, math.Identity())
			if err != nil {
				return nil, fmt.Errorf("mesh %d %q: %w", i, m.Name, err)
			}
			soup = append(soup, tris...)
		}
	} else {
		for _, root := range roots {
			tris, err := nodeTriangles(doc, root, math.Identity(), 0)
			if err != nil {
				return nil, err
			}
			soup = append(soup, tris...)
		}
	}

	if len(soup) == 0 {
		return nil, ErrNoTriangles
	}
	return soup, nil
}

func sceneRoots(doc *gltf.Document) []int {
	if len(doc.Scenes) == 0 {
		return nil
	}
	scene := 0
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		scene = *doc.Scene
	}
	return doc.Scenes[scene].Nodes
}

// maxNodeDepth guards against cyclic node graphs in malformed files.
const maxNodeDepth = 64

func nodeTriangles(doc *gltf.Document, index int, parent math.Mat4, depth int) ([]math.Vec3, error) {
	if index < 0 || index >= len(doc.Nodes) {
		return nil, fmt.Errorf("node %d out of range", index)
	}
	if depth > maxNodeDepth {
		return nil, fmt.Errorf("node %d: hierarchy deeper than %d", index, maxNodeDepth)
	}

	node := doc.Nodes[index]
	world := parent.Mul(localTransform(node))

	var soup []math.Vec3
	if node.Mesh != nil {
		if *node.Mesh >= len(doc.Meshes) {
			return nil, fmt.Errorf("node %d: mesh %d out of range", index, *node.Mesh)
		}
		m := doc.Meshes[*node.Mesh]
		tris, err := meshTriangles(doc, m, world)
		if err != nil {
			return nil, fmt.Errorf("node %d mesh %q: %w", index, m.Name, err)
		}
		soup = append(soup, tris...)
	}

	for _, child := range node.Children {
		tris, err := nodeTriangles(doc, child, world, depth+1)
		if err != nil {
			return nil, err
		}
		soup = append(soup, tris...)
	}
	return soup, nil
}

// localTransform returns the node matrix, composing T*R*S when the node
// stores separate components.
func localTransform(node *gltf.Node) math.Mat4 {
	if node.Matrix != gltf.DefaultMatrix && node.Matrix != ([16]float64{}) {
		var m math.Mat4
		for i, v := range node.Matrix {
			m[i] = float32(v)
		}
		return m
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()

	rotation := math.QuatIdentity()
	if r != ([4]float64{}) {
		rotation = math.Quat{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])}.Normalize()
	}
	return math.Translate(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul(rotation.ToMat4()).
		Mul(math.Scale(float32(s[0]), float32(s[1]), float32(s[2])))
}

func meshTriangles(doc *gltf.Document, m *gltf.Mesh, transform math.Mat4) ([]math.Vec3, error) {
	var soup []math.Vec3
	for pi, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			logger.Debug("skipping non-triangle primitive",
				zap.String("mesh", m.Name),
				zap.Int("primitive", pi),
				zap.Int("mode", int(prim.Mode)))
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok || posIdx >= len(doc.Accessors) {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		world := make([]math.Vec3, len(positions))
		for i, p := range positions {
			world[i] = transform.TransformVec3(math.Vec3{X: p[0], Y: p[1], Z: p[2]})
		}

		if prim.Indices == nil {
			// Sequential triangles; a trailing partial triangle is dropped
			n := len(world) - len(world)%3
			soup = append(soup, world[:n]...)
			continue
		}

		if *prim.Indices >= len(doc.Accessors) {
			return nil, fmt.Errorf("indices accessor %d out of range", *prim.Indices)
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
			if a >= len(world) || b >= len(world) || c >= len(world) {
				return nil, fmt.Errorf("index out of range at triangle %d", i/3)
			}
			soup = append(soup, world[a], world[b], world[c])
		}
	}
	return soup, nil
}
