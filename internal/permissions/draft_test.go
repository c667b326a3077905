package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftSelectAllAndDeselect(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.Stage(2, 7, ActionSelectAll))
	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, Flags{CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true}, entries[0].Flags)

	require.NoError(t, d.Stage(2, 7, ActionDeselect))
	entries = d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, Flags{}, entries[0].Flags)
}

func TestDraftTogglesSingleFlags(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.Stage(2, 7, ActionAdd))
	require.NoError(t, d.Stage(2, 7, ActionView))
	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, Flags{CanCreate: true, CanRead: true}, entries[0].Flags)

	// Toggling again clears
	require.NoError(t, d.Stage(2, 7, ActionAdd))
	assert.Equal(t, Flags{CanRead: true}, d.Entries()[0].Flags)
}

func TestDraftTracksOnlyTouchedKeys(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.Stage(2, 7, ActionEdit))
	require.NoError(t, d.Stage(3, 9, ActionDelete))

	assert.Len(t, d.Entries(), 2)
}

func TestDraftRejectsUnknownAction(t *testing.T) {
	d := NewDraft()

	assert.Error(t, d.Stage(2, 7, "Grant"))
	assert.Empty(t, d.Entries())
}
