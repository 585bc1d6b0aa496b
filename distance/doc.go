// Package distance provides the great-circle distance capability used to score tours.
//
// The GA core depends only on the Distancer interface:
//
//	Distance(ctx, a, b geo.Location) (float64, error)
//
// Backends:
//   - Haversine: local haversine formula on a spherical earth (kilometres).
//   - GeoIndex: local distance via github.com/hailocab/go-geoindex (kilometres).
//   - HTTP: remote service queried with lat_1/lon_1/lat_2/lon_2 and
//     answering {"distance": x}.
//   - Command: external process invoked as `path args... lat1 lon1 lat2 lon2`
//     printing a single number.
//
// Decorators:
//   - Cached: in-process LRU memoization (github.com/hashicorp/golang-lru/v2).
//   - RedisCache: shared read-through cache (github.com/go-redis/redis/v8).
//
// Every failure is reported as *UnavailableError (matching ErrUnavailable).
// No backend or decorator ever substitutes a default value for a failed call;
// retrying is left to the caller.
package distance
