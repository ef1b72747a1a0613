// Package memory provides in-process implementations of the store
// interfaces. They back the server when no database is configured and give
// the service tests a real store to run against.
//
// Every store is safe for concurrent use. Records are copied on the way in
// and on the way out, so callers never share memory with the store.
package memory
