// Package redis bootstraps go-redis clients with connection verification and
// retry logic.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// The client's built-in pool handles concurrent checkout/checkin; pool size
// and timeouts are set through the connection URL. Healthcheck returns a
// probe for readiness endpoints.
package redis
