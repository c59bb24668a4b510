// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains shared utilities: money conversion and display
// formatting (lib/money) and the stale-view signal sent after
// writes (lib/revalidate).
package lib
