// Package cache memoizes rendered profile documents per subscriber and
// output format.
//
// Entries are keyed "impi|format" and must be invalidated when the
// underlying subscriber data changes; the OAM API exposes invalidation and
// statistics for that purpose.
package cache
