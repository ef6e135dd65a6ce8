package gradle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_LauncherFollowsPlatformOnEveryCall(t *testing.T) {
	goos := "linux"
	calls := 0
	a := NewAdapter(nil)
	a.platform = func() string {
		calls++
		return goos
	}

	assert.Equal(t, "./gradlew", a.Launcher())

	goos = "windows"
	assert.Equal(t, "gradlew.bat", a.Launcher())
	assert.Equal(t, "gradlew.bat", a.Command("/proj", "app:assembleDebug", nil).Name)

	goos = "darwin"
	assert.Equal(t, "./gradlew", a.Command("/proj", "app:assembleDebug", nil).Name)
	assert.Equal(t, 4, calls)
}
