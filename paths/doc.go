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

// Package paths contains functions to prepare paths for gxplay resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory or file specified in the arguments. Battery RAM, save states, the
// preferences file and any capture files are all stored under the resource
// path.
//
// If a directory named .gxplay exists in the current working directory then
// that is used as the resource path. Otherwise the resource path is the
// gxplay directory in the user's configuration directory, as reported by
// os.UserConfigDir().
package paths
