package constant

// Values of runtime.GOOS that get special handling.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
