//go:build windows

package guid

import "golang.org/x/sys/windows"

// GUID represents a GUID/UUID. It has the same structure as
// golang.org/x/sys/windows.GUID so that it can be used with functions expecting
// that type. It is defined as its own type so that stringification and
// marshaling can be supported. The representation matches that used by native
// Windows code.
type GUID windows.GUID

// FromWindows converts a platform GUID without copying its fields around.
func FromWindows(g windows.GUID) GUID { return GUID(g) }

// Windows returns g as the platform GUID type.
func (g GUID) Windows() windows.GUID { return windows.GUID(g) }
