package domain

const (
	// UnixLauncher is the Gradle wrapper script used on non-Windows hosts.
	UnixLauncher = "./gradlew"

	// WindowsLauncher is the Gradle wrapper batch file used on Windows hosts.
	WindowsLauncher = "gradlew.bat"

	// WindowsGOOS is the runtime.GOOS value of Windows hosts.
	WindowsGOOS = "windows"
)

// ResolveLauncher returns the Gradle wrapper name for the given GOOS value.
func ResolveLauncher(goos string) string {
	if goos == WindowsGOOS {
		return WindowsLauncher
	}
	return UnixLauncher
}
