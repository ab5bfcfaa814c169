// Package usecase resolves Anilist ids to hianime.to data by combining the
// metadata, mapping and streaming upstreams.
package usecase
