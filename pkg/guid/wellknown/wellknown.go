// Package wellknown holds GUIDs with a fixed meaning on Windows hosts: the
// Hyper-V socket VM ID wildcards and the service ID template used to map
// AF_VSOCK ports onto Hyper-V sockets.
//
// The variables are generated from vmid.txt by guidgen, so none of them is
// parsed at run time.
package wellknown

import "github.com/bogu9821/guidparser/pkg/guid"

//go:generate go run github.com/bogu9821/guidparser/cmd/guidgen -f vmid.txt -table vmIDNames -o zvmid.go
//go:generate go run github.com/bogu9821/guidparser/cmd/guidgen -o zservice.go vsockServiceTemplate={00000000-facb-11e6-bd58-64006a7986d3}

// VsockServiceID returns the Hyper-V socket service ID corresponding to the
// specified AF_VSOCK port.
func VsockServiceID(port uint32) guid.GUID {
	g := vsockServiceTemplate // make a copy
	g.Data1 = port
	return g
}

// VsockPort is the inverse of VsockServiceID. It reports false if g was not
// derived from the VSOCK service template.
func VsockPort(g guid.GUID) (uint32, bool) {
	t := g
	t.Data1 = 0
	if !guid.Equal(t, vsockServiceTemplate) {
		return 0, false
	}
	return g.Data1, true
}

// Lookup returns the variable name of a well-known VM ID.
func Lookup(g guid.GUID) (string, bool) {
	name, ok := vmIDNames[g]
	return name, ok
}
