package domain

// Verb is a high-level Gradle build intent.
type Verb string

const (
	// VerbAssemble produces the APK without installing it.
	VerbAssemble Verb = "assemble"
	// VerbBuild assembles and runs the checks of the variant.
	VerbBuild Verb = "build"
	// VerbInstall assembles and installs the APK on a connected device.
	VerbInstall Verb = "install"
	// VerbCustom runs a caller supplied Gradle task name verbatim.
	VerbCustom Verb = "custom"
)

// String returns the raw verb value.
func (v Verb) String() string {
	return string(v)
}

// TaskName composes the Gradle task for a verb and mode, e.g. "app:installDebug".
// Inputs are not validated; malformed names surface as Gradle failures.
func TaskName(appName string, verb Verb, mode BuildMode) string {
	return appName + ":" + string(verb) + mode.PascalCase()
}
