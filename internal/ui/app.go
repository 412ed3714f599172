package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/OneHot/internal/group"
	"github.com/piwi3910/OneHot/internal/model"
	"github.com/piwi3910/OneHot/internal/project"
	"github.com/piwi3910/OneHot/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app      fyne.App
	window   fyne.Window
	config   model.AppConfig
	cfgPath  string
	palette  model.Palette
	registry *group.Registry
	hook     widgets.PlatformHook
	log      *zap.Logger

	// UI references for dynamic updates
	buttons   map[string][]*widgets.OneHotButton
	ungrouped *widgets.OneHotButton
	status    *widget.Label

	history   *History
	restoring bool // suppresses history while state is set programmatically
}

// NewApp prepares the UI for cfg, which must pass cfg.Validate.
func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	palette, err := cfg.Style.Palette()
	if err != nil {
		return nil, fmt.Errorf("button palette: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		app:      application,
		window:   window,
		config:   cfg,
		palette:  palette,
		registry: group.NewRegistry(group.WithLogger(log.Named("group"))),
		hook:     widgets.DefaultPlatformHook(),
		log:      log,
		buttons:  make(map[string][]*widgets.OneHotButton),
		history:  NewHistory(),
		cfgPath:  project.DefaultConfigPath(),
	}, nil
}

// SetConfigPath sets where imported settings are saved.
func (a *App) SetConfigPath(path string) {
	a.cfgPath = path
}

// SetPlatformHook replaces the hook run by AttachPlatformHooks.
func (a *App) SetPlatformHook(hook widgets.PlatformHook) {
	a.hook = hook
}

// Registry exposes the group registry shared by all buttons.
func (a *App) Registry() *group.Registry {
	return a.registry
}

// ApplyTheme installs the configured theme.
func (a *App) ApplyTheme() {
	a.app.Settings().SetTheme(ThemeFor(a.config.Theme))
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear All Selections", func() {
			a.ClearAll()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Settings...", func() {
			a.exportSettings()
		}),
		fyne.NewMenuItem("Import Settings...", func() {
			a.importSettings()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.Undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.Redo()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About OneHot",
		"OneHot — grouped toggle buttons\n\n"+
			"Checking a button unchecks every other\n"+
			"button in the same group.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// ─── Settings ──────────────────────────────────────────────

func (a *App) exportSettings() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.ExportAllData(path, a.config); err != nil {
			a.log.Error("export settings failed", zap.String("path", path), zap.Error(err))
			dialog.ShowError(err, a.window)
			return
		}
		a.log.Info("settings exported", zap.String("path", path))
	}, a.window)
}

func (a *App) importSettings() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		if err := a.ImportSettings(reader.URI().Path()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Settings Imported",
			"The imported settings take effect after a restart.", a.window)
	}, a.window)
}

// ImportSettings reads an exported settings file and saves it as the
// configuration used on next start.
func (a *App) ImportSettings(path string) error {
	backup, err := project.ImportAllData(path)
	if err != nil {
		a.log.Error("import settings failed", zap.String("path", path), zap.Error(err))
		return err
	}
	if err := project.SaveAppConfig(a.cfgPath, backup.Config); err != nil {
		a.log.Error("save imported settings failed", zap.String("path", a.cfgPath), zap.Error(err))
		return fmt.Errorf("save settings: %w", err)
	}
	a.log.Info("settings imported",
		zap.String("from", path),
		zap.String("version", backup.Version),
		zap.String("created_at", backup.CreatedAt),
	)
	return nil
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.restoring = true
	defer func() { a.restoring = false }()

	sections := container.NewVBox()
	for _, g := range a.config.Groups {
		sections.Add(a.buildGroupCard(g))
	}
	if a.config.UngroupedLabel != "" {
		a.ungrouped = a.newButton(a.config.UngroupedLabel)
		sections.Add(widget.NewCard("Independent", "Not part of any group", a.ungrouped))
	}

	a.status = widget.NewLabel("")
	a.status.Wrapping = fyne.TextWrapWord
	a.refreshStatus()

	content := container.NewBorder(nil, a.status, nil, nil, container.NewVScroll(sections))
	return withToolTipLayer(content, a.window.Canvas())
}

// ─── Groups ────────────────────────────────────────────────

func (a *App) buildGroupCard(g model.GroupConfig) fyne.CanvasObject {
	list := container.NewVBox()
	for _, option := range g.Options {
		b := a.newButton(option)
		b.SetGroup(g.Name)
		a.buttons[g.Name] = append(a.buttons[g.Name], b)
		list.Add(b)
	}
	// Checked after every member joined so the initial state is exclusive too.
	for _, b := range a.buttons[g.Name] {
		if b.Text == g.Selected {
			b.SetChecked(true)
		}
	}

	name := g.Name
	clearBtn := newIconButtonWithTooltip(theme.ContentClearIcon(), "Clear selection", func() {
		a.ClearGroup(name)
	})
	header := container.NewBorder(nil, nil, nil, clearBtn, widget.NewLabelWithStyle(
		g.DisplayTitle(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	return widget.NewCard("", "", container.NewBorder(header, nil, nil, nil, list))
}

func (a *App) newButton(label string) *widgets.OneHotButton {
	b := widgets.NewOneHotButtonWithPalette(label, a.registry, a.palette)
	b.OnChanged = func(checked bool) {
		if checked && !a.restoring {
			a.history.Push(a.snapshotBefore(b))
		}
		a.log.Debug("button changed",
			zap.String("label", label),
			zap.String("group", b.Group()),
			zap.Bool("checked", checked),
		)
		a.refreshStatus()
	}
	return b
}

// AttachPlatformHooks runs the platform hook on every button. Call it once
// the content has been set on the window.
func (a *App) AttachPlatformHooks() {
	for _, b := range a.allButtons() {
		widgets.Attach(b, a.hook)
	}
}

func (a *App) allButtons() []*widgets.OneHotButton {
	var out []*widgets.OneHotButton
	for _, g := range a.config.Groups {
		out = append(out, a.buttons[g.Name]...)
	}
	if a.ungrouped != nil {
		out = append(out, a.ungrouped)
	}
	return out
}

// Buttons returns the buttons of the named group in display order.
func (a *App) Buttons(name string) []*widgets.OneHotButton {
	return a.buttons[name]
}

// Ungrouped returns the stand-alone toggle, or nil when none is configured.
func (a *App) Ungrouped() *widgets.OneHotButton {
	return a.ungrouped
}

// Selection returns the label of the checked button in the named group, or "".
func (a *App) Selection(name string) string {
	for _, m := range a.registry.Members(name) {
		if b, ok := m.(*widgets.OneHotButton); ok && b.Checked() {
			return b.Text
		}
	}
	return ""
}

// ClearGroup unchecks every button of the named group. Clearing a group
// with nothing checked records no history.
func (a *App) ClearGroup(name string) {
	if a.Selection(name) == "" {
		return
	}
	a.history.Push(a.currentSnapshot("Clear " + name))
	a.clearGroup(name)
}

func (a *App) clearGroup(name string) {
	for _, m := range a.registry.Members(name) {
		m.Uncheck()
	}
}

// ClearAll unchecks every button, grouped or not.
func (a *App) ClearAll() {
	if !a.anyChecked() {
		return
	}
	a.history.Push(a.currentSnapshot("Clear all"))
	for _, g := range a.config.Groups {
		a.clearGroup(g.Name)
	}
	if a.ungrouped != nil {
		a.ungrouped.SetChecked(false)
	}
}

func (a *App) anyChecked() bool {
	for _, b := range a.allButtons() {
		if b.Checked() {
			return true
		}
	}
	return false
}

// ─── Undo / Redo ───────────────────────────────────────────

// Undo restores the selections from before the last change.
func (a *App) Undo() bool {
	snap, ok := a.history.Undo(a.currentSnapshot("Undo"))
	if ok {
		a.restore(snap)
	}
	return ok
}

// Redo re-applies the last undone change.
func (a *App) Redo() bool {
	snap, ok := a.history.Redo(a.currentSnapshot("Redo"))
	if ok {
		a.restore(snap)
	}
	return ok
}

func (a *App) selections() map[string]string {
	sel := make(map[string]string, len(a.config.Groups))
	for _, g := range a.config.Groups {
		sel[g.Name] = a.Selection(g.Name)
	}
	return sel
}

func (a *App) currentSnapshot(label string) Snapshot {
	return MakeSnapshot(a.selections(), a.ungrouped != nil && a.ungrouped.Checked(), label)
}

// snapshotBefore reconstructs the state just before b became checked. It runs
// from OnChanged, before the group cascade, so the previous selection is the
// other checked member of b's group.
func (a *App) snapshotBefore(b *widgets.OneHotButton) Snapshot {
	snap := a.currentSnapshot("Check " + b.Text)
	if name := b.Group(); name != "" {
		snap.Selections[name] = ""
		for _, m := range a.registry.Members(name) {
			if other, ok := m.(*widgets.OneHotButton); ok && other != b && other.Checked() {
				snap.Selections[name] = other.Text
				break
			}
		}
	}
	if b == a.ungrouped {
		snap.Ungrouped = false
	}
	return snap
}

func (a *App) restore(snap Snapshot) {
	a.restoring = true
	defer func() { a.restoring = false }()

	for _, g := range a.config.Groups {
		target := snap.Selections[g.Name]
		if target == "" {
			a.clearGroup(g.Name)
			continue
		}
		for _, b := range a.buttons[g.Name] {
			if b.Text == target {
				b.SetChecked(true)
				break
			}
		}
	}
	if a.ungrouped != nil {
		a.ungrouped.SetChecked(snap.Ungrouped)
	}
}

// Close detaches every button from the registry.
func (a *App) Close() {
	for _, b := range a.allButtons() {
		b.Detach()
	}
	a.buttons = make(map[string][]*widgets.OneHotButton)
	a.ungrouped = nil
	a.history.Clear()
}

// ─── Status ────────────────────────────────────────────────

func (a *App) statusText() string {
	parts := make([]string, 0, len(a.config.Groups)+1)
	for _, g := range a.config.Groups {
		sel := a.Selection(g.Name)
		if sel == "" {
			sel = "—"
		}
		parts = append(parts, g.DisplayTitle()+": "+sel)
	}
	if a.ungrouped != nil {
		state := "off"
		if a.ungrouped.Checked() {
			state = "on"
		}
		parts = append(parts, a.ungrouped.Text+": "+state)
	}
	return strings.Join(parts, " · ")
}

func (a *App) refreshStatus() {
	if a.status == nil {
		return
	}
	a.status.SetText(a.statusText())
}
