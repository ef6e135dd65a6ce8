package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "droid.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for executable scripts (rwxr-xr-x).
	ExecPerm = 0o755
)

// JoinRoot resolves p against root unless p is already absolute.
func JoinRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
