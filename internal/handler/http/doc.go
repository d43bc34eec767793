// Package http implements the HTTP transport layer of the topologic server.
//
// It wires the chi router, the JSON endpoints over the model configuration
// service and the per-model browser mounted under /topologic/{table}/.
// Request tracing, access logging, response compression and request
// timeouts are applied here before requests reach the service layer.
package http
