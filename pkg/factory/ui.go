package factory

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownOS is returned when no factory is mapped to the platform key.
var ErrUnknownOS = errors.New("unsupported OS")

// Platform selects a UI component family.
type Platform string

// Supported platforms.
const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// Button is a clickable UI product.
type Button interface {
	Render() string
	OnClick() string
}

// Dialog is a modal UI product.
type Dialog interface {
	Render() string
	Show() string
}

// Menu is a menu-bar UI product.
type Menu interface {
	Render() string
}

// Factory creates one coherent family of UI products.
type Factory interface {
	NewButton() Button
	NewDialog() Dialog
	NewMenu() Menu
}

type windowsButton struct{}

func (windowsButton) Render() string  { return "🪟 [Windows Button]" }
func (windowsButton) OnClick() string { return "Windows button clicked - using Win32 API" }

type windowsDialog struct{}

func (windowsDialog) Render() string { return "🪟 Windows Dialog Window" }
func (windowsDialog) Show() string   { return "Showing Windows native dialog (Win32)" }

type windowsMenu struct{}

func (windowsMenu) Render() string { return "🪟 Windows Menu Bar" }

type macButton struct{}

func (macButton) Render() string  { return "🍎 [macOS Button]" }
func (macButton) OnClick() string { return "macOS button clicked - using Cocoa framework" }

type macDialog struct{}

func (macDialog) Render() string { return "🍎 macOS Dialog Window" }
func (macDialog) Show() string   { return "Showing macOS native dialog (Cocoa/AppKit)" }

type macMenu struct{}

func (macMenu) Render() string { return "🍎 macOS Menu Bar" }

type linuxButton struct{}

func (linuxButton) Render() string  { return "🐧 [Linux Button]" }
func (linuxButton) OnClick() string { return "Linux button clicked - using GTK/Qt" }

type linuxDialog struct{}

func (linuxDialog) Render() string { return "🐧 Linux Dialog Window" }
func (linuxDialog) Show() string   { return "Showing Linux native dialog (GTK/Qt)" }

type linuxMenu struct{}

func (linuxMenu) Render() string { return "🐧 Linux Menu Bar" }

// WindowsFactory builds the Windows product family.
type WindowsFactory struct{}

func (WindowsFactory) NewButton() Button { return windowsButton{} }
func (WindowsFactory) NewDialog() Dialog { return windowsDialog{} }
func (WindowsFactory) NewMenu() Menu     { return windowsMenu{} }

// MacOSFactory builds the macOS product family.
type MacOSFactory struct{}

func (MacOSFactory) NewButton() Button { return macButton{} }
func (MacOSFactory) NewDialog() Dialog { return macDialog{} }
func (MacOSFactory) NewMenu() Menu     { return macMenu{} }

// LinuxFactory builds the Linux product family.
type LinuxFactory struct{}

func (LinuxFactory) NewButton() Button { return linuxButton{} }
func (LinuxFactory) NewDialog() Dialog { return linuxDialog{} }
func (LinuxFactory) NewMenu() Menu     { return linuxMenu{} }

// uiFactories maps platform keys to their factories.
var uiFactories = map[Platform]Factory{
	Windows: WindowsFactory{},
	MacOS:   MacOSFactory{},
	Linux:   LinuxFactory{},
}

// NewUIFactory resolves a platform to its component factory.
// Returns ErrUnknownOS for an unmapped platform.
func NewUIFactory(p Platform) (Factory, error) {
	f, ok := uiFactories[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOS, p)
	}
	return f, nil
}

// App holds one UI component family and renders it.
type App struct {
	button Button
	dialog Dialog
	menu   Menu
}

// NewApp builds an application UI for the platform.
func NewApp(p Platform) (*App, error) {
	f, err := NewUIFactory(p)
	if err != nil {
		return nil, err
	}
	return &App{
		button: f.NewButton(),
		dialog: f.NewDialog(),
		menu:   f.NewMenu(),
	}, nil
}

// RenderUI writes each component's rendering to w.
func (a *App) RenderUI(w io.Writer) {
	fmt.Fprintf(w, "  %s\n", a.menu.Render())
	fmt.Fprintf(w, "  %s\n", a.button.Render())
	fmt.Fprintf(w, "  %s\n", a.dialog.Render())
}

// Interact writes the results of simulated user interaction to w.
func (a *App) Interact(w io.Writer) {
	fmt.Fprintf(w, "  %s\n", a.button.OnClick())
	fmt.Fprintf(w, "  %s\n", a.dialog.Show())
}
