// Package infra contains technical adapters such as the zerolog logger,
// metrics exporters and the MQTT publisher. These packages should depend only
// on the interfaces defined in the core packages.
package infra
