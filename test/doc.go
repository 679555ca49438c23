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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and let the test
// continue. The Demand*() functions stop the test with t.Fatalf().
//
// The ExpectSuccess() and ExpectFailure() functions accept bool and error
// values. For bool, success means true. For error, success means nil.
//
// Optional tags can be passed to all functions. They are prefixed to the
// failure message and can be used to identify which iteration of a loop
// caused the failure.
package test
