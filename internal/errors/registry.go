package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "No active render scope",
		Detail:   "Stack.Active was called outside a render pass. The scope stack is only populated between Push and Pop, which Renderer.RenderToString manages for you.",
		DocURL:   "https://seidr.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Scope stack underflow",
		Detail:   "Stack.Pop was called more times than Push. This indicates unbalanced render pass bookkeeping.",
		DocURL:   "https://seidr.dev/docs/errors/E002",
	},

	// ============================================
	// Capture Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryCapture,
		Message:  "Binding references unregistered observable",
		Detail:   "A binding was registered for an observable identifier that was never registered with the scope. The binding is skipped during capture.",
		DocURL:   "https://seidr.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryCapture,
		Message:  "Scope already captured",
		Detail:   "CaptureHydrationData was called twice on the same scope. The registry is cleared after the first capture.",
		DocURL:   "https://seidr.dev/docs/errors/E101",
	},

	// ============================================
	// Hydration Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryHydration,
		Message:  "Hydration element not found",
		Detail:   "A binding in the hydration payload references an element identifier that does not exist in the client DOM. This usually means server and client markup diverged.",
		DocURL:   "https://seidr.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryHydration,
		Message:  "Hydration observable missing",
		Detail:   "The hydration payload references an observable position that was never constructed on the client. Server and client construction order must match.",
		DocURL:   "https://seidr.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryHydration,
		Message:  "No active hydration context",
		Detail:   "A hydration operation was attempted without a capture payload installed on the hydrator.",
		DocURL:   "https://seidr.dev/docs/errors/E202",
	},
}
