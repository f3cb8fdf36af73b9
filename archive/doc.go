// Package archive reads and writes comic-book archives.
//
// [Reader] lists and decodes the page images of a .cbz (zip) or .cbr (rar)
// archive. Members are ordered by numeric-aware collation, so page2 sorts
// before page10 regardless of zero padding. Non-image members are ignored.
//
// [Writer] produces .cbz output only; rar archives cannot be written with
// pure-Go tooling, and cbz is the interchange format modern readers expect.
package archive
