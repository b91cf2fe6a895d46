package entities

// WorkUnit is one (credential, artifact, destination) triple executed
// independently during a check run. Units are immutable; the builder creates
// them once and the executor consumes them.
type WorkUnit struct {
	Credential CredentialDescriptor
	SourcePath string
	DestName   string
}

// TransferRequest describes one upload attempt against the remote backend.
type TransferRequest struct {
	SourcePath     string
	Remote         string
	FolderID       string
	CredentialPath string
	DestName       string
}

// TransferOutcome carries the raw result of one upload attempt. Output holds
// stdout and stderr merged, for failure classification.
type TransferOutcome struct {
	Success bool
	Output  string
}

// TransferResult is the final outcome of one executed work unit. Reason is
// the classified failure line; it is empty when the transfer succeeded or
// when no diagnostic line matched, and callers render "unknown error" in the
// latter case.
type TransferResult struct {
	Success bool
	Output  string
	Reason  string
}
