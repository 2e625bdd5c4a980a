// Package style holds text styles, their font specifications and the
// per-view collection of styles, margins and markers (ViewStyle).
//
// A ViewStyle realises fonts lazily: Refresh asks the surface for one font
// per distinct FontSpecification in use, caches the result and copies the
// realised font and its measurements into every style that uses it.
package style
