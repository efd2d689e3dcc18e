package constants

// JobStatus is the canonical status for rows in process_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"       // queued for processing
	JobStatusRunning     JobStatus = "RUNNING"      // in progress
	JobStatusStructureOK JobStatus = "STRUCTURE_OK" // stage 1 completed (layout analyzed)
	JobStatusTemplateOK  JobStatus = "TEMPLATE_OK"  // stage 2 completed (template recognized)
	JobStatusExtractOK   JobStatus = "EXTRACT_OK"   // stage 3 completed (fields extracted)
	JobStatusFiled       JobStatus = "FILED"        // terminal success (filing rules applied)
	JobStatusFailed      JobStatus = "FAILED"       // terminal failure
)

// JobStatuses returns every status as strings, for storage enums.
func JobStatuses() []string {
	return []string{
		string(JobStatusQueued),
		string(JobStatusRunning),
		string(JobStatusStructureOK),
		string(JobStatusTemplateOK),
		string(JobStatusExtractOK),
		string(JobStatusFiled),
		string(JobStatusFailed),
	}
}

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)
