// Package pipeline feeds measurement records through a Computer in input
// order. It never imports app, writers, or cli; outcomes leave through a
// callback.
package pipeline
