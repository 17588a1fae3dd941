package sitemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vitrine-url-api/internal/model"
)

func TestNewUpdateRequest(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 12, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	changes := []model.URLChange{
		{OldURL: "/fiat/argo-2023", NewURL: "/fiat/argo-2024", ChangeType: model.ChangeRedirected},
		{NewURL: "/fiat/argo-2024/sao-paulo-sp", ChangeType: "anything"},
	}

	req := NewUpdateRequest(123, changes)
	assert.Equal(t, 123, req.VehicleID)
	assert.Equal(t, changes, req.URLChanges)
	assert.Equal(t, time.UTC, req.UpdateTimestamp.Location())
	assert.True(t, fixed.Equal(req.UpdateTimestamp))
}

func TestNewUpdateRequest_NilChanges(t *testing.T) {
	req := NewUpdateRequest(1, nil)
	assert.NotNil(t, req.URLChanges)
	assert.Empty(t, req.URLChanges)
}

func TestChangesFromGeneration(t *testing.T) {
	changes := ChangesFromGeneration([]string{"/a", "/b", "/a"})
	assert.Equal(t, []model.URLChange{
		{NewURL: "/a", ChangeType: model.ChangeCreated},
		{NewURL: "/b", ChangeType: model.ChangeCreated},
	}, changes)
}
