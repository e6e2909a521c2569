// Package images defines the image container formats recognized by the
// magic-byte sniffer and the classification contracts built on top of it.

package images
