package observable

// Bind applies the observable's current value to target immediately, then
// re-applies on every subsequent change. It returns the subscription's
// cancel function.
//
// This is the only mechanism by which an observable's changes reach a DOM
// element or other consumer. There is deliberately no debouncing or
// batching: every change is applied immediately and individually.
func Bind(o *Observable, target any, apply func(v any, target any)) func() {
	apply(o.Value(), target)
	return o.Observe(func(v any) {
		apply(v, target)
	})
}
