// Package core provides the colour and geometry types shared by the
// renderer packages.
package core
