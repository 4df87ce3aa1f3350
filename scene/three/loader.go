//go:build js

package three

import (
	"context"
	"fmt"
	"sync"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/scene"
)

// ModelExt is appended to model names to build asset URLs.
const ModelExt = ".glb"

// GLTFLoader fetches binary glTF models with THREE.GLTFLoader. The loaded
// three.js object is kept as a template; the gameplay side only sees an
// empty group carrying the model name, which the Renderer later swaps for a
// clone of the template.
type GLTFLoader struct {
	BaseURL string

	loader *js.Object

	mu        sync.Mutex
	templates map[string]*js.Object
}

// NewGLTFLoader creates a loader rooted at baseURL. THREE.GLTFLoader must be
// on the page.
func NewGLTFLoader(baseURL string) *GLTFLoader {
	return &GLTFLoader{
		BaseURL:   baseURL,
		loader:    js.Global.Get("THREE").Get("GLTFLoader").New(),
		templates: make(map[string]*js.Object),
	}
}

type loadResult struct {
	scene *js.Object
	err   error
}

// LoadModel implements scene.ModelLoader. It blocks the calling goroutine
// until the browser finishes the request.
func (l *GLTFLoader) LoadModel(ctx context.Context, name string) (*scene.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := l.BaseURL + name + ModelExt
	done := make(chan loadResult, 1)
	l.loader.Call("load", url,
		func(gltf *js.Object) {
			done <- loadResult{scene: gltf.Get("scene")}
		},
		nil,
		func(e *js.Object) {
			done <- loadResult{err: fmt.Errorf("%w: %s (%s)", scene.ErrModelNotFound, url, e.String())}
		},
	)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		l.mu.Lock()
		l.templates[name] = r.scene
		l.mu.Unlock()
		debug.Debug("three: loaded", url)
		return &scene.Model{Name: name, Root: scene.NewGroup(name)}, nil
	}
}

// Template returns the loaded three.js object for name, or nil.
func (l *GLTFLoader) Template(name string) *js.Object {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.templates[name]
}

// TextureLoader loads each sprite URL once.
type TextureLoader struct {
	loader   *js.Object
	textures map[string]*js.Object
}

// NewTextureLoader wraps THREE.TextureLoader.
func NewTextureLoader() *TextureLoader {
	return &TextureLoader{
		loader:   js.Global.Get("THREE").Get("TextureLoader").New(),
		textures: make(map[string]*js.Object),
	}
}

// Load returns the texture for url, starting the download on first use.
func (t *TextureLoader) Load(url string) *js.Object {
	if tex, ok := t.textures[url]; ok {
		return tex
	}
	tex := t.loader.Call("load", url)
	t.textures[url] = tex
	return tex
}
