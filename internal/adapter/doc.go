// Package adapter provides reusable engine implementations configured at
// registration time: a JSON API adapter driven by a field mapping, an HTML
// page adapter driven by CSS selectors, and an RSS/Atom feed adapter. One
// adapter type parameterized by configuration replaces per-provider
// subclassing; a deployment declares providers in the settings file and
// the composition root instantiates the right kind for each.
package adapter
