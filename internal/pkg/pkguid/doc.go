// Package pkguid provides helpers for generating unique identifiers.
//
// Callers depend on the StringID interface instead of a concrete strategy; the
// UUID implementation produces time-ordered v7 identifiers used as correlation IDs.
package pkguid
