// Package logger provides structured logging for viewkit using zerolog.
//
// Library packages obtain a component-scoped logger through Get and only log
// outside the traversal hot path (construction rejections, telemetry
// bootstrap). Commands configure the global logger once with Init.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("view")
//	log.Debug("adapter rejected", logger.Fields(logger.FieldAdapter, "reverse"))
package logger
