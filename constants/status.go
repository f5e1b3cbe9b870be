package constants

// ImportJobStatus is the canonical status for rows in import_jobs.
type ImportJobStatus string

// Stable values (store these exact strings in DB).
const (
	ImportQueued     ImportJobStatus = "QUEUED"            // submitted, not yet picked up
	ImportValidating ImportJobStatus = "VALIDATING"        // mapping + row validation running
	ImportAwaiting   ImportJobStatus = "AWAITING_APPROVAL" // validated, waiting for confirm
	ImportWriting    ImportJobStatus = "WRITING"           // bulk writer running
	ImportCompleted  ImportJobStatus = "COMPLETED"         // terminal success
	ImportFailed     ImportJobStatus = "FAILED"            // terminal failure
)

// ImportJobStatuses holds the allowed values for the status field in ImportJob.
var ImportJobStatuses = []string{
	string(ImportQueued),
	string(ImportValidating),
	string(ImportAwaiting),
	string(ImportWriting),
	string(ImportCompleted),
	string(ImportFailed),
}
