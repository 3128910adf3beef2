// Package materials holds the fixed density table used for dome weights.
//
// The table is immutable. Names are normalized before lookup (trimmed and
// case folded) and the Korean names 유리, 알루미늄 and 탄소강 resolve to glass,
// aluminum and carbon-steel. Unknown names fall back to the default material.
package materials
