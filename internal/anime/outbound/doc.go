// Package outbound talks to the upstream sites behind the catalog resolver:
// the Anilist GraphQL API, the mal-backup mapping dataset and hianime.to with
// its video embed host.
//
// A 404 from any upstream, or an explicit "nothing here" answer, is reported
// as an error wrapping pkgerror.ErrNotFound. Everything else that goes wrong
// is an upstream failure.
package outbound
