// Package preference persists the locale a user explicitly picked.
//
// The stored preference is a single key-value pair owned by the client runtime.
// It is written only by the locale switch controller and read by the navigation
// guards before any negotiated language hint. The server never reads it.
//
// Memory is enough for a single runtime. Redis keeps the value durable and
// shared between runtimes of the same client:
//
//	store, err := preference.NewRedis(client, clientID, preference.WithTTL(365*24*time.Hour))
package preference
