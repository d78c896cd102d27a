/*
Package dds reads and writes plain DirectDraw Surface textures so DDS assets
can be converted to and from DLN.

Reading decodes the largest mip level into an image; writing encodes an
image in one of the BCn or 32-bit RGBA layouts with an optional mip chain.
*/
package dds
