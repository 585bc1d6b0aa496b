// Package config loads a geotour run configuration from YAML.
//
// A configuration names the location file, the engine parameters and the
// distance backend chain. Missing keys keep the values of Default(), unknown
// keys are rejected. Durations use Go syntax ("250ms", "2m").
//
//	locations: data/cities.csv
//	seed: 42
//	population_size: 80
//	generations: 500
//	plateau: 50
//	selection: tournament
//	mutation: inversion
//	local_search: true
//	distance:
//	  backend: http
//	  url: http://localhost:8080/distance
//	  timeout: 2s
//	  redis:
//	    addr: localhost:6379
//	    ttl: 24h
//	history:
//	  path: runs.db
package config
