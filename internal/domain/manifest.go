package domain

// Manifest mirrors the project manifest file (runtime.lock). Only the
// nested runtime version requirement is consumed; everything else in the
// document is ignored.
type Manifest struct {
	Runtime ManifestRuntime `json:"runtime"`
}

// ManifestRuntime holds the declared runtime requirement.
type ManifestRuntime struct {
	Version string `json:"version"`
}

// Requirement returns the declared version string, empty when the manifest
// omits one.
func (m Manifest) Requirement() string {
	return m.Runtime.Version
}

// ReconcileState classifies the outcome of one manifest reconciliation pass.
type ReconcileState string

const (
	ReconcileManifestAbsent ReconcileState = "manifest_absent"
	ReconcileDecodeError    ReconcileState = "decode_error"
	ReconcileNoRequirement  ReconcileState = "no_requirement"
	ReconcileSatisfied      ReconcileState = "satisfied"
	ReconcileSwitchProposed ReconcileState = "switch_proposed"
	ReconcileInstallProposed ReconcileState = "install_proposed"
)

// ReconcileOutcome reports what a reconciliation pass decided, independent
// of whether the user accepted the proposal.
type ReconcileOutcome struct {
	State       ReconcileState
	Requirement string
	Candidate   *InstalledVersion
	Exact       bool
	Accepted    bool
}
