// Package model provides the data types shared across the panelizer
// pipeline.
//
// # Geometry
//
// [Region] is an axis-aligned bounding box in source-page pixel coordinates.
// Unlike PDF-style geometry, coordinates are integers with the origin at the
// top-left corner and Y increasing downward, matching the image.Image
// convention.
//
// # Panels
//
// A [Panel] is a final panel bounding box tagged with its reading-order
// index. [PageResult] collects the panels detected on a single page together
// with the page's identity and full bounds.
package model
