// Package errors provides structured errors for the Seidr runtime.
//
// Every known failure mode has a registered error code (e.g. "E001") with a
// category, message, and documentation link. Errors created via New carry
// the registered metadata and can be enriched with details and suggestions:
//
//	err := errors.New("E001").
//	    WithDetail("getActiveScope was called outside a render pass").
//	    WithSuggestion("Wrap the call in Renderer.RenderToString")
//
// Errors support the standard errors.Is/As chain via Unwrap.
package errors
