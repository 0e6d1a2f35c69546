// Package redis bootstraps go-redis clients for the site.
//
// The only Redis consumer is the durable locale preference store used by client
// runtimes that keep their preference outside the browser (see core/preference).
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := preference.NewRedis(client, clientID)
//
// Connect pings with exponential backoff and honours context cancellation.
// Healthcheck returns a probe suitable for core/health.Readiness.
//
// Errors wrap one of ErrEmptyConnectionURL, ErrFailedToParseRedisConnString,
// ErrRedisNotReady or ErrHealthcheckFailed and can be matched with errors.Is.
package redis
