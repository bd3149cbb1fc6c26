// Package formscrape extracts typed records for interactive web-form
// elements (inputs, checkboxes, combo boxes, links, images and data grids)
// from HTML, and the hidden postback-state fields that server-rendered form
// frameworks round-trip on every request.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., htmlquery/, sqlite/, rod/).
package formscrape
