/*
Package dln implements the DLN container: a raster image plus opaque
metadata packed into a compact binary file.

A DLN file is a short header followed by two independently compressed
sections, metadata first and pixels second:

	"DLN" | hex(width) | passes | hex(height) | mode | hex(metaLen) | version | meta | pixels

Width, height and metadata length are lowercase ASCII hex digits with no
prefix, padding or separator; a field ends at the first byte that is not a
hex digit. The passes byte stores how many times each section went through
the compressor (metadata in the high nibble, pixels in the low nibble).

Sections are compressed greedily: the compressor runs again over its own
output for as long as each run makes the buffer strictly smaller, up to 2
runs for metadata and 15 for pixels. Zstandard is the default compressor.

The package also registers "dln" with the standard image package, so
image.Decode accepts DLN files once this package is imported.
*/
package dln
