/*
Package observability instruments type definitions with Prometheus metrics.

Instrument wraps any schema.Definition so that every Valid and Cast call is
counted by outcome and every Cast is timed. The metrics are registered on a
caller-supplied registerer and can be exported through the usual Prometheus
handlers or written once to a node-exporter textfile with WriteTextfile.
*/
package observability
