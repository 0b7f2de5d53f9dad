// Package template defines the rendering seam shared by the cardgen
// renderers. The gotemplate subpackage provides the default pongo2-backed
// implementation.
package template
