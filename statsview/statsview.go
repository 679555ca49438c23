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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the default address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Server is a running stats server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch a new goroutine running the statsview. An empty address means the
// default Address.
func Launch(output io.Writer, address string) *Server {
	if address == "" {
		address = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	srv := &Server{mgr: statsview.New()}
	go srv.mgr.Start()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", address, url)))

	return srv
}

// Stop the stats server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
