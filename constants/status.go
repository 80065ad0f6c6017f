package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusOCROK   JobStatus = "OCR_OK"   // stage 1 completed (text recognized)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (candidate assembled)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)

// MinUsableTextLen is the minimum recognized-text length (in runes) below
// which a scan is treated as unusable and the job fails with a
// recognition error.
const MinUsableTextLen = 20

// ImageConfidenceThreshold flags low-confidence OCR output for review.
const ImageConfidenceThreshold = 0.6
