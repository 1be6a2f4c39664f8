// Package server exposes rendered subscriber profiles over HTTP for the
// Diameter application layer and for operators.
//
// Endpoints:
//   - GET  /api/health
//   - GET  /api/profile/sh-data.xml?impi=...
//   - GET  /api/profile/sh-data.json?impi=...
//   - GET  /api/cache/stats
//   - POST /api/cache/invalidate?impi=...   (all entries when impi is empty)
package server
