package consts

// Permissions for the directories and files jellytube creates.
const (
	// Media directories - world readable, Jellyfin usually runs as another user
	PermsLibraryDir = 0o755

	// Logs
	PermsLogDir  = 0o755
	PermsLogFile = 0o644
)
