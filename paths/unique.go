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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not test for this.
//
// Used to generate filenames for audio captures and state graph dumps. The
// format of the returned string is:
//
//	prepend_title_YYYYMMDD_HHMMSS.ext
//
// If the title is empty the returned string is of the form:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// Spaces in the title are replaced with underscores.
func UniqueFilename(prepend string, title string, ext string) string {
	timestamp := time.Now().Format("20060102_150405")

	c := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s.%s", prepend, c, timestamp, ext)
	}
	return fmt.Sprintf("%s_%s.%s", prepend, timestamp, ext)
}
