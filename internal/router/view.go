package router

// ViewID names a view. It doubles as the URL fragment and as the
// data-view attribute of the navigation control that opens it.
type ViewID string

// View renders the markup of one section of the application.
type View interface {
	Render() string
}

// AfterRenderer is implemented by views that attach behavior once their
// markup is in the document. Work started by AfterRender is not waited on.
type AfterRenderer interface {
	AfterRender(doc Document)
}

// Table maps view names to views. It is fixed when the Router is built.
type Table map[ViewID]View

// ActionHandler handles a bound action. fields carries the values of the
// form that triggered it.
type ActionHandler func(fields map[string]string)

// Document is the part of the page the router and views write to.
type Document interface {
	// SetContent replaces the markup of the content container.
	SetContent(markup string)
	// NavTargets lists the view names the navigation controls point at.
	NavTargets() []ViewID
	// SetActive toggles the active marker on the control for view.
	SetActive(view ViewID, active bool)
	// SetRegion replaces the markup of the element with the given id, if
	// it is still in the document.
	SetRegion(id, markup string)
	// Bind registers handler for the named action until the content is
	// next replaced.
	Bind(action string, handler ActionHandler)
}

// HistoryState is the state object carried by a history entry.
type HistoryState struct {
	View ViewID `json:"view"`
}

// History is the browser session history as seen by the router.
type History interface {
	// PushState adds an entry carrying state and shows fragment in the
	// address bar.
	PushState(state HistoryState, fragment string)
	// Fragment returns the current URL fragment without the leading '#'.
	Fragment() string
}

// IconRenderer expands icon placeholders after each render.
type IconRenderer interface {
	CreateIcons()
}

// FuncView adapts a plain render function to View.
type FuncView func() string

func (f FuncView) Render() string { return f() }
