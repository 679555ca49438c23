// This file is part of gxplay.
//
// gxplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gxplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gxplay.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and
// placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want callers
// to be able to recognise an error store the pattern as a const string and
// test for it with Is() or Has():
//
//	const SaveFailed = "statefile: save: %v"
//
//	err := curated.Errorf(SaveFailed, ferr)
//	if curated.Is(err, SaveFailed) {
//		...
//	}
//
// Is() only checks the outermost error. Has() searches the chain of curated
// errors passed as placeholder values.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. Parts are separated by the sub-string ": ". This
// means a function can wrap an error with its own package prefix without
// worrying whether the callee has already done so:
//
//	curated.Errorf("playmode: %v", curated.Errorf("playmode: %v", err))
//
// prints as "playmode: ..." and not "playmode: playmode: ...".
//
// Curated errors also implement Unwrap() so the first error value in the
// placeholder list is visible to errors.Is() and errors.As() from the standard
// library.
package curated
