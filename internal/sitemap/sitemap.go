// Package sitemap shapes the URL change notifications sent to the sitemap
// backend. It performs no I/O.
package sitemap

import (
	"time"

	"vitrine-url-api/internal/model"
)

// now is replaced in tests
var now = time.Now

// NewUpdateRequest stamps the changes of a vehicle with the current UTC time.
// The changes are passed through as given.
func NewUpdateRequest(vehicleID int, changes []model.URLChange) model.SitemapUpdateRequest {
	if changes == nil {
		changes = []model.URLChange{}
	}
	return model.SitemapUpdateRequest{
		VehicleID:       vehicleID,
		URLChanges:      changes,
		UpdateTimestamp: now().UTC(),
	}
}

// ChangesFromGeneration describes the URLs of a fresh generation as created
// entries
func ChangesFromGeneration(urls []string) []model.URLChange {
	changes := make([]model.URLChange, 0, len(urls))
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		changes = append(changes, model.URLChange{NewURL: u, ChangeType: model.ChangeCreated})
	}
	return changes
}
