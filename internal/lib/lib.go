// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the outbound client for the downstream attendance
// service and the embedded HTML pages shown to people who click
// an emailed link.
package lib
