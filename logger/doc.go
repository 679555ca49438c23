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

// Package logger is the logging package for gxplay. There is a single central
// log for the application available through the package level functions:
//
//	logger.Log(logger.Allow, "sdlaudio", "device opened")
//	logger.Logf(logger.Allow, "pacer", "%d frames in %d ticks", rendered, target)
//
// The detail argument to Log() can be a string, an error, a fmt.Stringer or any
// other type. Types other than string, error and fmt.Stringer are formatted
// with the %v verb.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This matters for the synchronisation layer where
// the same condition can be reported every frame.
//
// The Permission argument decides whether the entry is made at all. Most
// callers should use logger.Allow. A type implementing AllowLogging() can be
// used to silence a component, for example during tests.
//
// Entries can be echoed to an io.Writer as they are made. SetEcho() with an
// *os.File that is a terminal will colour the tag of each entry.
package logger
