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

// Package modalflag parses command lines of the form:
//
//	gxplay [flags] [MODE] [mode flags] [arguments]
//
// Each layer of the command line is parsed by a separate call to Parse(). The
// flags for a layer are added before the call, along with the list of modes
// that can follow it. The first mode in the list is the default and is chosen
// when the next argument is not a mode name. Mode names are case insensitive.
//
// For example:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "PERFORMANCE")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		wav := md.AddString("wav", "", "record audio to wav file")
//		...
//	}
//
// The -help flag is handled by Parse() at every layer. The help text lists the
// flags of the layer and the sub-modes that can follow.
package modalflag
