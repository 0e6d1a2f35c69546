// Package localestate publishes the locale currently in effect for a client runtime.
//
// The navigation guards and the locale switch controller are the only writers.
// Everything else receives a Reader and subscribes:
//
//	state := localestate.New(catalog.Default())
//	unsubscribe := state.OnChange(func(code locale.Code) {
//		translator.Use(code)
//	})
//	defer unsubscribe()
//
// Delivery is synchronous with the navigation that produced the change, so a
// subscriber never observes a stale locale once a navigation has completed.
package localestate
