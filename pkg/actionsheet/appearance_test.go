package actionsheet

import (
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultActionTextStyles(t *testing.T) {
	t.Parallel()

	a := DefaultAppearance()
	assert.False(t, a.ActionTextStyle(StyleDefault).GetBold())
	assert.True(t, a.ActionTextStyle(StyleCancel).GetBold())
	assert.Nil(t, a.ActionImageTint(StyleDefault))
	assert.Nil(t, a.ActionImageTint(StyleCancel))
}

func TestActionStyleOverridesAreScopedToStyle(t *testing.T) {
	t.Parallel()

	a := DefaultAppearance()
	italic := lipgloss.NewStyle().Italic(true)
	a.SetActionTextStyle(StyleDefault, &italic)
	a.SetActionImageTint(StyleCancel, lipgloss.Color("9"))

	assert.True(t, a.ActionTextStyle(StyleDefault).GetItalic())
	assert.False(t, a.ActionTextStyle(StyleCancel).GetItalic())
	assert.Nil(t, a.ActionImageTint(StyleDefault))
	assert.Equal(t, lipgloss.Color("9"), a.ActionImageTint(StyleCancel))

	a.SetActionTextStyle(StyleDefault, nil)
	assert.False(t, a.ActionTextStyle(StyleDefault).GetItalic())
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	t.Parallel()

	store := NewAppearanceStore(DefaultAppearance())
	snapshot := store.Snapshot()

	store.Update(func(a *Appearance) {
		a.CornerRadius = 4
		a.Background = lipgloss.Color("#000000")
	})
	bold := lipgloss.NewStyle().Bold(true)
	store.SetActionTextStyle(StyleDefault, &bold)

	assert.Equal(t, 1, snapshot.CornerRadius)
	assert.Nil(t, snapshot.Background)
	assert.False(t, snapshot.ActionTextStyle(StyleDefault).GetBold())

	assert.Equal(t, 4, store.Snapshot().CornerRadius)
	assert.True(t, store.ActionTextStyle(StyleDefault).GetBold())
}

func TestStoreClampsNegativeGeometry(t *testing.T) {
	t.Parallel()

	a := DefaultAppearance()
	a.CornerRadius = -3
	a.DragHandleWidth = -1
	store := NewAppearanceStore(a)
	assert.Equal(t, 0, store.Snapshot().CornerRadius)
	assert.Equal(t, 0, store.Snapshot().DragHandleWidth)

	store.Set(a)
	assert.Equal(t, 0, store.Snapshot().CornerRadius)
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewAppearanceStore(DefaultAppearance())
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.SetActionImageTint(StyleDefault, lipgloss.ANSIColor(i))
		}()
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
			_ = store.ActionImageTint(StyleDefault)
		}()
	}
	wg.Wait()
	require.NotNil(t, store.ActionImageTint(StyleDefault))
}

func TestSharedAppearanceIsSingleton(t *testing.T) {
	t.Parallel()

	require.Same(t, SharedAppearance(), SharedAppearance())
}

func TestSheetTakesSnapshotAtConstruction(t *testing.T) {
	t.Parallel()

	store := NewAppearanceStore(DefaultAppearance())
	sheet := New("Share", "", DisplayList, WithAppearance(store.Snapshot()))

	store.Update(func(a *Appearance) { a.CornerRadius = 0 })
	assert.Equal(t, 1, sheet.Appearance().CornerRadius)

	sheet.SetCornerRadius(-5)
	assert.Equal(t, 0, sheet.Appearance().CornerRadius)
}

func TestTitleBoldFollowsAppearanceUnlessSet(t *testing.T) {
	t.Parallel()

	sheet := New("Share", "", DisplayList, WithAppearance(DefaultAppearance()))
	assert.True(t, sheet.titleStyle().GetBold(), "the default title is bold")

	sheet.SetTitleStyle(lipgloss.NewStyle().Bold(false))
	assert.False(t, sheet.titleStyle().GetBold())

	bold := true
	prefs := DefaultPreferences()
	prefs.TitleBold = &bold
	sheet.SetPreferences(prefs)
	assert.True(t, sheet.titleStyle().GetBold(), "an explicit preference wins")

	regular := false
	prefs.TitleBold = &regular
	sheet.SetPreferences(prefs)
	sheet.SetTitleStyle(lipgloss.NewStyle().Bold(true))
	assert.False(t, sheet.titleStyle().GetBold())
}
