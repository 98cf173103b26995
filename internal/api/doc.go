// Package api is the client for the dashboard's REST backend.
//
// Endpoints:
//   - GET   /notifications, PATCH /notifications/{id}
//   - GET   /portfolio, /marketdata, /orders, /executions
//   - POST  /orders
//
// Reads are retried with jittered exponential backoff on 5xx and 429.
// Writes are sent once; a failure is returned to the caller as is.
package api
