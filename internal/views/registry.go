package views

// Kind says where a node's configuration is rendered.
type Kind int

const (
	KindPlaceholder Kind = iota
	KindSidePanel
	KindTab
)

func (k Kind) String() string {
	switch k {
	case KindSidePanel:
		return "side-panel"
	case KindTab:
		return "tab"
	default:
		return "placeholder"
	}
}

// Registry binds node type tags to renderers. R is whatever the host uses
// to draw a configuration view.
type Registry[R any] struct {
	sidePanels  map[string]R
	tabs        map[string]R
	placeholder R
}

// NewRegistry creates a registry that falls back to placeholder for
// unknown types.
func NewRegistry[R any](placeholder R) *Registry[R] {
	return &Registry[R]{
		sidePanels:  make(map[string]R),
		tabs:        make(map[string]R),
		placeholder: placeholder,
	}
}

// RegisterSidePanel binds an inline type to a side-panel renderer.
func (r *Registry[R]) RegisterSidePanel(typeTag string, renderer R) {
	r.sidePanels[typeTag] = renderer
}

// RegisterTab binds a type to a tab-body renderer.
func (r *Registry[R]) RegisterTab(typeTag string, renderer R) {
	r.tabs[typeTag] = renderer
}

// Resolve picks the renderer for typeTag by exact match. Side panels win
// over tabs; unknown types get the placeholder.
func (r *Registry[R]) Resolve(typeTag string) (R, Kind) {
	if s, ok := r.sidePanels[typeTag]; ok {
		return s, KindSidePanel
	}
	if t, ok := r.tabs[typeTag]; ok {
		return t, KindTab
	}
	return r.placeholder, KindPlaceholder
}
