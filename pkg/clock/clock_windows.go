//go:build windows

package clock

import "golang.org/x/sys/windows"

func processNanoseconds() int64 {
	var creation, exit, kernel, user windows.Filetime
	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		return 0
	}
	return filetimeNanoseconds(kernel) + filetimeNanoseconds(user)
}

// Kernel and user times are durations, not timestamps, so the raw 100ns
// tick count is converted directly.
func filetimeNanoseconds(ft windows.Filetime) int64 {
	return (int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)) * 100
}
