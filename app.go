package selene

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/net/html"

	"github.com/grindlemire/selene/internal/debug"
)

// ErrMountTargetNotFound is returned by Mount when there is nothing to
// mount into.
var ErrMountTargetNotFound = errors.New("mount target not found")

// App binds a view function to a container node. The view is rendered
// reactively: reading a signal through the scope passed to the view
// re-renders the container when that signal changes.
type App struct {
	rt       *Runtime
	view     func(sc *Scope) *VNode
	renderer *DOMRenderer
	name     string

	mu        sync.Mutex
	container *html.Node
	stop      Stop
}

// CreateApp creates an application for view. It is not rendered until
// Mount is called.
func CreateApp(rt *Runtime, view func(sc *Scope) *VNode, opts ...AppOption) (*App, error) {
	if rt == nil {
		return nil, fmt.Errorf("create app: nil runtime")
	}
	if view == nil {
		return nil, fmt.Errorf("create app: nil view")
	}

	app := &App{
		rt:   rt,
		view: view,
		name: "app",
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	if app.renderer == nil {
		app.renderer = NewDOMRenderer()
	}
	return app, nil
}

// Mount renders the app into container and keeps it up to date. Mounting
// an app that is already mounted moves it to the new container.
func (a *App) Mount(container *html.Node) error {
	if container == nil {
		return ErrMountTargetNotFound
	}
	a.Unmount()

	a.mu.Lock()
	a.container = container
	a.mu.Unlock()

	debug.Log("%s: mounting into <%s>", a.name, container.Data)
	stop := a.renderer.ReactiveRender(a.rt, a.view, container)

	a.mu.Lock()
	a.stop = stop
	a.mu.Unlock()
	return nil
}

// MountID mounts the app into the element of doc with the given id.
func (a *App) MountID(doc *html.Node, id string) error {
	target := FindByID(doc, id)
	if target == nil {
		return fmt.Errorf("#%s: %w", id, ErrMountTargetNotFound)
	}
	return a.Mount(target)
}

// Unmount stops re-rendering. The container keeps its last content.
func (a *App) Unmount() {
	a.mu.Lock()
	stop := a.stop
	a.stop = nil
	a.container = nil
	a.mu.Unlock()

	if stop != nil {
		debug.Log("%s: unmounting", a.name)
		stop()
	}
}

// Container returns the node the app is mounted into, or nil.
func (a *App) Container() *html.Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.container
}

// Renderer returns the renderer used by the app, for dispatching events.
func (a *App) Renderer() *DOMRenderer {
	return a.renderer
}
