package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/OneHot/internal/model"
	"github.com/piwi3910/OneHot/internal/project"
	"github.com/piwi3910/OneHot/internal/ui/widgets"
)

func newTestApp(t *testing.T, cfg model.AppConfig) *App {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("OneHot")
	t.Cleanup(w.Close)

	appUI, err := NewApp(a, w, cfg, nil)
	require.NoError(t, err)
	w.SetContent(appUI.Build())
	return appUI
}

func TestBuildCreatesConfiguredGroups(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())

	assert.Len(t, appUI.Buttons("diet"), 4)
	assert.Len(t, appUI.Buttons("size"), 3)
	require.NotNil(t, appUI.Ungrouped())
	assert.Equal(t, []string{"diet", "size"}, appUI.Registry().Groups())
}

func TestInitialSelectionIsApplied(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())

	assert.Equal(t, "Medium", appUI.Selection("size"))
	assert.Equal(t, "", appUI.Selection("diet"))
}

func TestTappingUpdatesSelectionAndStatus(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	diet := appUI.Buttons("diet")

	test.Tap(diet[0])
	test.Tap(diet[2])

	assert.Equal(t, "Pescatarian", appUI.Selection("diet"))
	assert.False(t, diet[0].Checked())
	assert.Equal(t, "Diet: Pescatarian · Portion: Medium · Extra napkins: off", appUI.status.Text)
}

func TestGroupsAreIndependentOfEachOther(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())

	test.Tap(appUI.Buttons("diet")[1])
	test.Tap(appUI.Buttons("size")[0])

	assert.Equal(t, "Vegetarian", appUI.Selection("diet"))
	assert.Equal(t, "Small", appUI.Selection("size"))
}

func TestUngroupedToggleDoesNotTouchGroups(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())

	test.Tap(appUI.Ungrouped())

	assert.True(t, appUI.Ungrouped().Checked())
	assert.Equal(t, "Medium", appUI.Selection("size"))
	assert.Contains(t, appUI.status.Text, "Extra napkins: on")
}

func TestClearGroupAndClearAll(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	test.Tap(appUI.Buttons("diet")[3])
	test.Tap(appUI.Ungrouped())

	appUI.ClearGroup("size")
	assert.Equal(t, "", appUI.Selection("size"))
	assert.Equal(t, "Omnivore", appUI.Selection("diet"))

	appUI.ClearAll()
	assert.Equal(t, "", appUI.Selection("diet"))
	assert.False(t, appUI.Ungrouped().Checked())
	assert.Equal(t, "Diet: — · Portion: — · Extra napkins: off", appUI.status.Text)
}

func TestAttachPlatformHooksVisitsEveryButton(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	visited := 0
	appUI.SetPlatformHook(widgets.PlatformHookFunc(func(b *widgets.OneHotButton) {
		b.SetTabStop(false)
		visited++
	}))

	appUI.AttachPlatformHooks()

	assert.Equal(t, 8, visited)
	assert.False(t, appUI.Buttons("diet")[0].TabStop())
}

func TestCloseDetachesButtons(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	reg := appUI.Registry()

	appUI.Close()

	assert.Empty(t, reg.Groups())
	assert.Nil(t, appUI.Ungrouped())
}

func TestCustomStyleReachesButtons(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Style.SelectedBackground = "#ff0000"
	appUI := newTestApp(t, cfg)

	medium := appUI.Buttons("size")[1]
	assert.Equal(t, "#ff0000", model.HexColor(medium.DisplayBackgroundColor()))
}

func TestNewAppRejectsBadPalette(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := model.DefaultAppConfig()
	cfg.Style.UnselectedText = "nope"

	_, err := NewApp(a, a.NewWindow("x"), cfg, nil)
	assert.Error(t, err)
}

func TestNewAppRejectsDuplicateOptions(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := model.DefaultAppConfig()
	cfg.Groups[0].Options = []string{"A", "A", "B"}

	_, err := NewApp(a, a.NewWindow("x"), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate option "A"`)
}

func TestClearWithNothingCheckedAddsNoHistory(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())

	appUI.ClearGroup("diet")
	assert.False(t, appUI.history.CanUndo(), "diet has no selection")

	appUI.ClearGroup("size")
	require.True(t, appUI.history.CanUndo())
	require.True(t, appUI.Undo())
	assert.Equal(t, "Medium", appUI.Selection("size"))

	appUI.ClearAll()
	appUI.history.Clear()
	appUI.ClearAll()
	assert.False(t, appUI.history.CanUndo(), "nothing left to clear")
}

func TestNoUngroupedWhenLabelEmpty(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.UngroupedLabel = ""
	appUI := newTestApp(t, cfg)

	assert.Nil(t, appUI.Ungrouped())
	assert.Equal(t, "Diet: — · Portion: Medium", appUI.status.Text)
}

func TestThemeFor(t *testing.T) {
	dark := ThemeFor("dark")
	light := ThemeFor("light")
	system := ThemeFor("system")

	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight),
		"pinned variant wins over the requested one")
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		system.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, float32(15), system.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), system.Size(theme.SizeNamePadding))
}

func TestApplyTheme(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	appUI := newTestApp(t, cfg)

	appUI.ApplyTheme()

	_, ok := fyne.CurrentApp().Settings().Theme().(*OneHotTheme)
	assert.True(t, ok)
}

func TestUndoRedoSelections(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	assert.False(t, appUI.history.CanUndo(), "initial selection is not undoable")

	test.Tap(appUI.Buttons("diet")[0])
	test.Tap(appUI.Buttons("diet")[1])
	test.Tap(appUI.Buttons("size")[2])

	require.True(t, appUI.Undo())
	assert.Equal(t, "Medium", appUI.Selection("size"))
	assert.Equal(t, "Vegetarian", appUI.Selection("diet"))

	require.True(t, appUI.Undo())
	assert.Equal(t, "Vegan", appUI.Selection("diet"))

	require.True(t, appUI.Undo())
	assert.Equal(t, "", appUI.Selection("diet"))
	assert.False(t, appUI.Undo())

	require.True(t, appUI.Redo())
	assert.Equal(t, "Vegan", appUI.Selection("diet"))
}

func TestUndoClearAll(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	test.Tap(appUI.Ungrouped())
	test.Tap(appUI.Buttons("diet")[3])

	appUI.ClearAll()
	require.True(t, appUI.Undo())

	assert.Equal(t, "Omnivore", appUI.Selection("diet"))
	assert.Equal(t, "Medium", appUI.Selection("size"))
	assert.True(t, appUI.Ungrouped().Checked())
}

func TestRecheckingDoesNotAddHistory(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())

	test.Tap(appUI.Buttons("size")[1])

	assert.False(t, appUI.history.CanUndo())
}

func TestImportSettingsSavesConfig(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	appUI.SetConfigPath(cfgPath)

	exported := model.DefaultAppConfig()
	exported.Theme = "dark"
	backupPath := filepath.Join(dir, "backup.json")
	require.NoError(t, project.ExportAllData(backupPath, exported))

	require.NoError(t, appUI.ImportSettings(backupPath))

	loaded, err := project.LoadAppConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
}

func TestImportSettingsMissingFile(t *testing.T) {
	appUI := newTestApp(t, model.DefaultAppConfig())
	appUI.SetConfigPath(filepath.Join(t.TempDir(), "config.json"))

	assert.Error(t, appUI.ImportSettings(filepath.Join(t.TempDir(), "missing.json")))
}
