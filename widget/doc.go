// Package widget provides the concrete scene elements: a scrolling log box,
// a pannable and zoomable image viewport, and a single-row status line.
//
// Images come from text art (ImageFromText) or decoded pictures
// (ImageFromPicture, LoadImage) quantized to the 256-color palette.
package widget
