// Package cssvars is the CSS-custom-property presentation layer: a document
// root holding the theme variables, and an applier that maps a theme config
// onto them.
package cssvars

import (
	"sort"
	"strings"
	"sync"

	"github.com/crimsonknight90/inventario-admin/theme"
)

// Variable names set on every theme apply: nine colors plus the font.
const (
	VarColorPrimary      = "--color-primary"
	VarColorPrimaryHover = "--color-primary-hover"
	VarColorSurface      = "--color-surface"
	VarColorBackground   = "--color-background"
	VarColorText         = "--color-text"
	VarColorMuted        = "--color-muted"
	VarColorDanger       = "--color-danger"
	VarColorWarning      = "--color-warning"
	VarColorSuccess      = "--color-success"
	VarFontSans          = "--font-sans"
)

// Root models the document root's custom properties.
type Root struct {
	mu    sync.RWMutex
	props map[string]string
}

func NewRoot() *Root {
	return &Root{props: make(map[string]string)}
}

// SetProperty sets a custom property, overwriting any previous value.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props[name] = value
}

// Property returns the current value of a custom property, empty when
// unset.
func (r *Root) Property(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.props[name]
}

// Render emits the root as a :root CSS block with properties in stable
// order.
func (r *Root) Render() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.props))
	for name := range r.props {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.props[name])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

var _ theme.Applier = (*Applier)(nil)

// Applier writes the full variable set to a Root on every apply.
type Applier struct {
	root *Root
}

func NewApplier(root *Root) *Applier {
	return &Applier{root: root}
}

func (a *Applier) Apply(cfg theme.Config) {
	a.root.SetProperty(VarColorPrimary, cfg.Colors.Primary)
	a.root.SetProperty(VarColorPrimaryHover, cfg.Colors.PrimaryHover)
	a.root.SetProperty(VarColorSurface, cfg.Colors.Surface)
	a.root.SetProperty(VarColorBackground, cfg.Colors.Background)
	a.root.SetProperty(VarColorText, cfg.Colors.Text)
	a.root.SetProperty(VarColorMuted, cfg.Colors.Muted)
	a.root.SetProperty(VarColorDanger, cfg.Colors.Danger)
	a.root.SetProperty(VarColorWarning, cfg.Colors.Warning)
	a.root.SetProperty(VarColorSuccess, cfg.Colors.Success)
	a.root.SetProperty(VarFontSans, cfg.Fonts.Sans)
}
