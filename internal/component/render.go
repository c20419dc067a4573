package component

// Renderer is the render sink supplied by the presentation layer. Render is
// called at most once per postpone scope per component.
type Renderer interface {
	Render(c Component)
}

// Postpone opens a scope during which render requests are collected and
// deduplicated instead of delivered immediately. Scopes nest; the queue
// flushes once at the outermost exit, in first-request order. A panic inside
// fn still flushes whatever was already queued.
func (ctx *Context) Postpone(fn func()) {
	ctx.postponeDepth++
	defer func() {
		ctx.postponeDepth--
		if ctx.postponeDepth == 0 {
			ctx.flushRenders()
		}
	}()
	fn()
}

// ScheduleRender requests a render for c. Outside a postpone scope the
// request is delivered synchronously.
func (ctx *Context) ScheduleRender(c Component) {
	if ctx.renderer == nil || c == nil {
		return
	}
	if ctx.postponeDepth == 0 {
		ctx.renderer.Render(c)
		return
	}
	if ctx.queued == nil {
		ctx.queued = make(map[Component]struct{})
	}
	if _, ok := ctx.queued[c]; ok {
		return
	}
	ctx.queued[c] = struct{}{}
	ctx.renderQueue = append(ctx.renderQueue, c)
}

func (ctx *Context) flushRenders() {
	queue := ctx.renderQueue
	ctx.renderQueue = nil
	ctx.queued = nil
	for _, c := range queue {
		ctx.renderer.Render(c)
	}
}
