package notifications_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/notifications"
)

var t0 = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Parallel()

	n := notifications.New(notifications.TypeSuccess, "Done", "CSV file downloaded successfully!", notifications.ToastTTL, t0)
	require.NotNil(t, n.ExpiresAt)
	assert.Equal(t, t0.Add(3*time.Second), *n.ExpiresAt)
	assert.Equal(t, 3*time.Second, n.TTL())
	assert.False(t, n.ExpiredAt(t0.Add(2999*time.Millisecond)))
	assert.True(t, n.ExpiredAt(t0.Add(3*time.Second)))

	forever := notifications.New(notifications.TypeInfo, "", "hi", 0, t0)
	assert.Nil(t, forever.ExpiresAt)
	assert.Zero(t, forever.TTL())
	assert.False(t, forever.ExpiredAt(t0.Add(24*time.Hour)))
}

func TestType_Icon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "check-circle", notifications.TypeSuccess.Icon())
	assert.Equal(t, "exclamation-circle", notifications.TypeError.Icon())
	assert.Equal(t, "exclamation-triangle", notifications.TypeWarning.Icon())
	assert.Equal(t, "info-circle", notifications.TypeInfo.Icon())
}
