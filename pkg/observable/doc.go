// Package observable provides the reactive value primitive for Seidr.
//
// An Observable is a mutable value cell that notifies its subscribers
// synchronously, in subscription order, whenever the value changes:
//
//	count := observable.New(0)
//	stop := count.Observe(func(v any) { fmt.Println("count is", v) })
//	count.Set(5)  // prints "count is 5" before Set returns
//	stop()        // no further notifications
//
// Derived values are built with Derive and Computed:
//
//	doubled := count.Derive(func(v any) any { return v.(int) * 2 })
//	total := observable.Computed(func() any {
//	    return a.Value().(int) + b.Value().(int)
//	}, a, b)
//
// A derived observable registers its own unsubscription as a cleanup, so
// destroying it detaches it from every parent without touching the parent's
// other subscribers.
//
// There is no batching and no deferred notification: a Set drains all
// subscribers before it returns. A subscriber that itself sets another
// observable triggers a nested, fully synchronous cascade.
package observable
