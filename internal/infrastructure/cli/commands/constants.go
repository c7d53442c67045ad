package commands

// Error messages
const (
	ErrCoordinatorUnavailable    = "coordinator unavailable"
	ErrReconcilerUnavailable     = "manifest reconciler unavailable"
	ErrConsoleManagerUnavailable = "console manager unavailable"
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrHistoryStoreUnavailable   = "history store unavailable"
	ErrConfigLoaderUnavailable   = "config loader unavailable"
)

// Success messages
const (
	MsgNoHistoryRecorded   = "No history recorded yet."
	MsgNoVersionsInstalled = "No runtime versions installed."
	MsgNoRemoteVersions    = "No versions available for install."
)
