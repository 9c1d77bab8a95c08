// Package shell is the imperative shell around the functional core: it maps domain events
// to and from storable events, retries on concurrency conflicts and carries logging helpers.
package shell
