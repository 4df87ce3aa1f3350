//go:build js

package three

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starship-sorades-3d/projectile"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/simukka/starship-sorades-3d/starfield"
)

// Camera defaults
const (
	CameraFOV  = 60
	CameraNear = 1
	CameraFar  = 5000
	CameraZ    = 500
)

// Colors of the built-in meshes for groups without a model.
const (
	LaserColor  = 0xff2200
	PlayerColor = 0x33aaff
	DebugColor  = 0x00ff00
)

// Renderer owns the three.js scene, camera and WebGL renderer.
type Renderer struct {
	THREE  *js.Object
	Scene  *js.Object
	Camera *js.Object
	WebGL  *js.Object

	Models   *GLTFLoader
	Textures *TextureLoader

	mirrored map[*scene.Group]*js.Object
	seen     map[*scene.Group]bool
	points   map[*scene.PointCloud]*pointsMirror
}

type pointsMirror struct {
	object   *js.Object
	position *js.Object
	version  uint64
}

// NewRenderer draws into canvas. models may be nil, in which case every
// group without a built-in mesh renders as an empty THREE.Group.
func NewRenderer(canvas *js.Object, width, height float64, models *GLTFLoader) *Renderer {
	three := js.Global.Get("THREE")
	r := &Renderer{
		THREE:    three,
		Scene:    three.Get("Scene").New(),
		Camera:   three.Get("PerspectiveCamera").New(CameraFOV, width/height, CameraNear, CameraFar),
		WebGL:    three.Get("WebGLRenderer").New(map[string]interface{}{"canvas": canvas, "antialias": true}),
		Models:   models,
		Textures: NewTextureLoader(),
		mirrored: make(map[*scene.Group]*js.Object),
		seen:     make(map[*scene.Group]bool),
		points:   make(map[*scene.PointCloud]*pointsMirror),
	}
	r.Camera.Get("position").Set("z", CameraZ)
	r.Scene.Call("add", three.Get("AmbientLight").New(0xffffff, 0.6))
	light := three.Get("DirectionalLight").New(0xffffff, 0.8)
	light.Get("position").Call("set", 0, 1, 1)
	r.Scene.Call("add", light)
	r.Resize(width, height)
	return r
}

// Resize matches the camera and drawing buffer to the canvas size.
func (r *Renderer) Resize(width, height float64) {
	r.Camera.Set("aspect", width/height)
	r.Camera.Call("updateProjectionMatrix")
	r.WebGL.Call("setSize", width, height)
}

// Render syncs s into the three.js scene and draws a frame.
func (r *Renderer) Render(s *scene.Scene) {
	for g := range r.seen {
		delete(r.seen, g)
	}
	for _, child := range s.Root.Children() {
		r.syncGroup(child, r.Scene)
	}
	r.prune()

	for _, p := range s.Points {
		r.syncPoints(p)
	}

	r.WebGL.Call("render", r.Scene, r.Camera)
}

func (r *Renderer) syncGroup(g *scene.Group, parent *js.Object) {
	r.seen[g] = true

	obj, ok := r.mirrored[g]
	if !ok {
		obj = r.newObject(g)
		parent.Call("add", obj)
		r.mirrored[g] = obj
		g.Handle = obj
	}

	obj.Get("position").Call("set", g.Position.X(), g.Position.Y(), g.Position.Z())
	obj.Set("visible", g.Visible)

	for _, child := range g.Children() {
		r.syncGroup(child, obj)
	}
}

// prune drops three.js objects whose group left the scene graph.
func (r *Renderer) prune() {
	for g, obj := range r.mirrored {
		if r.seen[g] {
			continue
		}
		if p := obj.Get("parent"); p != nil && p != js.Undefined {
			p.Call("remove", obj)
		}
		delete(r.mirrored, g)
		g.Handle = nil
	}
}

func (r *Renderer) newObject(g *scene.Group) *js.Object {
	if r.Models != nil {
		if tmpl := r.Models.Template(g.Name); tmpl != nil {
			return tmpl.Call("clone")
		}
	}

	switch g.Name {
	case "laser":
		geom := r.THREE.Get("CylinderGeometry").New(0.4, 0.4, projectile.LaserLength, 6)
		return r.THREE.Get("Mesh").New(geom, r.basicMaterial(LaserColor))
	case "player":
		geom := r.THREE.Get("ConeGeometry").New(8, 20, 8)
		return r.THREE.Get("Mesh").New(geom, r.basicMaterial(PlayerColor))
	}
	return r.THREE.Get("Group").New()
}

func (r *Renderer) basicMaterial(color int) *js.Object {
	return r.THREE.Get("MeshBasicMaterial").New(map[string]interface{}{"color": color})
}

func (r *Renderer) syncPoints(p *scene.PointCloud) {
	m, ok := r.points[p]
	if !ok {
		m = r.newPoints(p)
		r.points[p] = m
		p.Handle = m.object
		r.Scene.Call("add", m.object)
	}
	if v := p.Version(); v != m.version {
		m.position.Set("needsUpdate", true)
		m.version = v
	}
}

func (r *Renderer) newPoints(p *scene.PointCloud) *pointsMirror {
	geometry := r.THREE.Get("BufferGeometry").New()
	position := r.THREE.Get("BufferAttribute").New(float32View(p.Positions), 3)
	geometry.Call("setAttribute", "position", position)
	geometry.Call("setAttribute", "color", r.THREE.Get("BufferAttribute").New(float32View(p.Colors), 3))

	params := map[string]interface{}{
		"size":         p.Material.Size,
		"vertexColors": p.Material.VertexColors,
		"transparent":  p.Material.Transparent,
		"depthWrite":   false,
	}
	if p.Material.Sprite != "" {
		params["map"] = r.Textures.Load(p.Material.Sprite)
	}
	if p.Material.Additive {
		params["blending"] = r.THREE.Get("AdditiveBlending")
	}
	material := r.THREE.Get("PointsMaterial").New(params)

	return &pointsMirror{
		object:   r.THREE.Get("Points").New(geometry, material),
		position: position,
		version:  p.Version(),
	}
}

// float32View returns a Float32Array sharing memory with s, so mutations on
// the Go side reach the GPU buffer after needsUpdate without a copy.
func float32View(s []float32) *js.Object {
	internal := js.InternalObject(s)
	offset := internal.Get("$offset").Int()
	length := internal.Get("$length").Int()
	return internal.Get("$array").Call("subarray", offset, offset+length)
}

// AddWireframeBox outlines the star-field volume for debugging.
func (r *Renderer) AddWireframeBox(box starfield.Box) *js.Object {
	geom := r.THREE.Get("EdgesGeometry").New(r.THREE.Get("BoxGeometry").New(box.Width, box.Height, box.Depth))
	lines := r.THREE.Get("LineSegments").New(geom, r.THREE.Get("LineBasicMaterial").New(map[string]interface{}{"color": DebugColor}))
	r.Scene.Call("add", lines)
	return lines
}
