// Package metrics defines the interfaces used to record heuristic runs.
// Sinks like PromSink, InfluxSink and the MQTT publisher live in infra and
// register themselves by name; NewMetricsSink builds them from configuration
// and returns a MultiSink automatically when several sinks are configured.
package metrics
