// Package clickhouse loads the vocabulary of a live ClickHouse server.
//
// ClickHouse ships hundreds of functions and adds more with every release, so
// the built-in clickhouse dialect only knows the common ones. A Client reads
// system.functions and system.keywords and extends a dialect with them, which
// keeps calls such as toStartOfFifteenMinutes(ts, tz) on one line.
//
// Example usage:
//
//	// Connect to ClickHouse
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	base, _ := dialect.Lookup("clickhouse")
//	d, err := client.Extend(ctx, base)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := format.New(format.Defaults, d).Format(sql)
//
// Connections accept "host:port" or "clickhouse://" DSNs. mTLS is enabled with
// NewClientWithOptions when CA, certificate and key files are all provided.
package clickhouse
