package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/piwi3910/OneHot/internal/group"
	"github.com/piwi3910/OneHot/internal/model"
)

var (
	_ fyne.Tappable      = (*OneHotButton)(nil)
	_ fyne.Focusable     = (*OneHotButton)(nil)
	_ desktop.Hoverable  = (*OneHotButton)(nil)
	_ desktop.Cursorable = (*OneHotButton)(nil)
	_ group.Member       = (*OneHotButton)(nil)
)

// OneHotButton is a toggle button that behaves like a radio button: checking
// it unchecks every other button of the same group. Buttons only see each
// other through a shared group.Registry.
//
// All methods must be called on the Fyne main goroutine. Use
// SetCheckedFromGoroutine from anywhere else.
type OneHotButton struct {
	widget.BaseWidget

	Text string
	// OnChanged is called after the checked state actually changes, including
	// when a peer in the group unchecks this button.
	OnChanged func(checked bool) `json:"-"`

	id       string
	registry *group.Registry
	group    string
	checked  bool
	palette  model.Palette
	tabStop  bool

	textColor color.Color
	bgColor   color.Color
	focused   bool
	hovered   bool
}

// NewOneHotButton creates an unchecked, ungrouped button with the default
// palette. A nil registry gives the button a private one.
func NewOneHotButton(text string, registry *group.Registry) *OneHotButton {
	return NewOneHotButtonWithPalette(text, registry, model.DefaultPalette())
}

// NewOneHotButtonWithPalette is NewOneHotButton with explicit colors. Nil
// palette entries fall back to the defaults.
func NewOneHotButtonWithPalette(text string, registry *group.Registry, palette model.Palette) *OneHotButton {
	if registry == nil {
		registry = group.NewRegistry()
	}
	b := &OneHotButton{
		Text:     text,
		id:       uuid.NewString(),
		registry: registry,
		palette:  model.DefaultPalette(),
		tabStop:  true,
	}
	b.ExtendBaseWidget(b)
	b.applyPalette(palette)
	b.updateColors()
	return b
}

// ID returns the button's unique identifier.
func (b *OneHotButton) ID() string {
	return b.id
}

func (b *OneHotButton) String() string {
	return b.Text
}

// SetText updates the label.
func (b *OneHotButton) SetText(text string) {
	b.Text = text
	b.Refresh()
}

// Group returns the current group name, "" when ungrouped.
func (b *OneHotButton) Group() string {
	return b.group
}

// SetGroup moves the button into the named group; "" leaves all groups.
// The checked state is kept. A checked button joining a group unchecks the
// members already there so the group still has a single checked button.
func (b *OneHotButton) SetGroup(name string) {
	b.registry.SetGroup(b, name)
	b.group = b.registry.GroupOf(b)
	if b.checked && b.group != "" {
		b.registry.NotifyChecked(b)
	}
}

// Detach removes the button from its registry. Hosts call it when the button
// is discarded so the registry keeps no reference to it.
func (b *OneHotButton) Detach() {
	b.registry.Remove(b)
	b.group = ""
}

// Checked reports whether the button is checked.
func (b *OneHotButton) Checked() bool {
	return b.checked
}

// SetChecked sets the checked state. Checking, even a button that is already
// checked, unchecks the other members of its group. Unchecking never affects
// other buttons.
func (b *OneHotButton) SetChecked(checked bool) {
	changed := b.checked != checked
	b.checked = checked
	b.updateColors()
	b.Refresh()

	if changed && b.OnChanged != nil {
		b.OnChanged(checked)
	}
	if checked {
		b.registry.NotifyChecked(b)
	}
}

// SetCheckedFromGoroutine schedules SetChecked on the main goroutine.
func (b *OneHotButton) SetCheckedFromGoroutine(checked bool) {
	fyne.Do(func() {
		b.SetChecked(checked)
	})
}

// Uncheck implements group.Member.
func (b *OneHotButton) Uncheck() {
	b.SetChecked(false)
}

// SelectedTextColor is the text color used while checked.
func (b *OneHotButton) SelectedTextColor() color.Color { return b.palette.SelectedText }

// SelectedBackgroundColor is the background color used while checked.
func (b *OneHotButton) SelectedBackgroundColor() color.Color { return b.palette.SelectedBackground }

// UnselectedTextColor is the text color used while unchecked.
func (b *OneHotButton) UnselectedTextColor() color.Color { return b.palette.UnselectedText }

// UnselectedBackgroundColor is the background color used while unchecked.
func (b *OneHotButton) UnselectedBackgroundColor() color.Color {
	return b.palette.UnselectedBackground
}

// SetSelectedTextColor changes the checked text color. Nil is ignored.
func (b *OneHotButton) SetSelectedTextColor(c color.Color) {
	b.SetPalette(model.Palette{SelectedText: c})
}

// SetSelectedBackgroundColor changes the checked background. Nil is ignored.
func (b *OneHotButton) SetSelectedBackgroundColor(c color.Color) {
	b.SetPalette(model.Palette{SelectedBackground: c})
}

// SetUnselectedTextColor changes the unchecked text color. Nil is ignored.
func (b *OneHotButton) SetUnselectedTextColor(c color.Color) {
	b.SetPalette(model.Palette{UnselectedText: c})
}

// SetUnselectedBackgroundColor changes the unchecked background. Nil is ignored.
func (b *OneHotButton) SetUnselectedBackgroundColor(c color.Color) {
	b.SetPalette(model.Palette{UnselectedBackground: c})
}

// SetPalette replaces the non-nil colors of p and redraws.
func (b *OneHotButton) SetPalette(p model.Palette) {
	b.applyPalette(p)
	b.updateColors()
	b.Refresh()
}

func (b *OneHotButton) applyPalette(p model.Palette) {
	if p.SelectedText != nil {
		b.palette.SelectedText = p.SelectedText
	}
	if p.SelectedBackground != nil {
		b.palette.SelectedBackground = p.SelectedBackground
	}
	if p.UnselectedText != nil {
		b.palette.UnselectedText = p.UnselectedText
	}
	if p.UnselectedBackground != nil {
		b.palette.UnselectedBackground = p.UnselectedBackground
	}
}

func (b *OneHotButton) updateColors() {
	b.textColor, b.bgColor = b.palette.Pick(b.checked)
}

// DisplayTextColor is the text color currently drawn.
func (b *OneHotButton) DisplayTextColor() color.Color {
	return b.textColor
}

// DisplayBackgroundColor is the background color currently drawn.
func (b *OneHotButton) DisplayBackgroundColor() color.Color {
	return b.bgColor
}

// TabStop reports whether the button takes part in keyboard focus.
func (b *OneHotButton) TabStop() bool {
	return b.tabStop
}

// SetTabStop controls keyboard participation. Fyne decides tab order by type,
// so a button that is not a tab stop still receives focus but shows no focus
// indicator and ignores keys.
func (b *OneHotButton) SetTabStop(enabled bool) {
	b.tabStop = enabled
	if !enabled && b.focused {
		b.focused = false
		b.Refresh()
	}
}

// Tapped checks the button.
func (b *OneHotButton) Tapped(*fyne.PointEvent) {
	b.SetChecked(true)
}

// Cursor shows a pointer over the button.
func (b *OneHotButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MouseIn is called when a desktop pointer enters the widget.
func (b *OneHotButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved is called when a desktop pointer hovers over the widget.
func (b *OneHotButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is called when a desktop pointer exits the widget.
func (b *OneHotButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

// FocusGained is called when the button is focused via keyboard.
func (b *OneHotButton) FocusGained() {
	if !b.tabStop {
		return
	}
	b.focused = true
	b.Refresh()
}

// FocusLost is called when the button loses keyboard focus.
func (b *OneHotButton) FocusLost() {
	b.focused = false
	b.Refresh()
}

// TypedRune is a no-op.
func (b *OneHotButton) TypedRune(rune) {}

// TypedKey checks the button on Space or Return.
func (b *OneHotButton) TypedKey(ev *fyne.KeyEvent) {
	if !b.tabStop {
		return
	}
	switch ev.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		b.SetChecked(true)
	}
}

// CreateRenderer implements fyne.Widget.
func (b *OneHotButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.bgColor)
	hover := canvas.NewRectangle(color.Transparent)
	outline := canvas.NewRectangle(color.Transparent)
	label := canvas.NewText(b.Text, b.textColor)
	label.Alignment = fyne.TextAlignCenter

	r := &oneHotButtonRenderer{
		b:          b,
		background: bg,
		hover:      hover,
		outline:    outline,
		label:      label,
		objects:    []fyne.CanvasObject{bg, hover, outline, label},
	}
	r.Refresh()
	return r
}

type oneHotButtonRenderer struct {
	b          *OneHotButton
	background *canvas.Rectangle
	hover      *canvas.Rectangle
	outline    *canvas.Rectangle
	label      *canvas.Text
	objects    []fyne.CanvasObject
}

func (r *oneHotButtonRenderer) Layout(size fyne.Size) {
	for _, rect := range []*canvas.Rectangle{r.background, r.hover, r.outline} {
		rect.Resize(size)
		rect.Move(fyne.NewPos(0, 0))
	}
	textH := r.label.MinSize().Height
	r.label.Resize(fyne.NewSize(size.Width, textH))
	r.label.Move(fyne.NewPos(0, (size.Height-textH)/2))
}

func (r *oneHotButtonRenderer) MinSize() fyne.Size {
	pad := theme.InnerPadding()
	text := r.label.MinSize()
	return fyne.NewSize(text.Width+pad*2, text.Height+pad)
}

func (r *oneHotButtonRenderer) Refresh() {
	radius := theme.InputRadiusSize()

	r.background.FillColor = r.b.bgColor
	r.background.CornerRadius = radius

	r.hover.CornerRadius = radius
	if r.b.hovered {
		r.hover.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.hover.FillColor = color.Transparent
	}

	r.outline.CornerRadius = radius
	r.outline.StrokeWidth = theme.InputBorderSize()
	if r.b.focused {
		r.outline.StrokeColor = theme.Color(theme.ColorNameFocus)
	} else {
		r.outline.StrokeColor = color.Transparent
	}

	r.label.Text = r.b.Text
	r.label.Color = r.b.textColor
	r.label.TextSize = theme.TextSize()

	r.Layout(r.b.Size())
	canvas.Refresh(r.b)
}

func (r *oneHotButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *oneHotButtonRenderer) Destroy() {}
