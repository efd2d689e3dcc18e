package constants

// ClassificationLevel is the sensitivity tier a filing rule can assign.
type ClassificationLevel string

const (
	ClassificationPublic             ClassificationLevel = "PUBLIC"
	ClassificationInternal           ClassificationLevel = "INTERNAL"
	ClassificationConfidential       ClassificationLevel = "CONFIDENTIAL"
	ClassificationHighlyConfidential ClassificationLevel = "HIGHLY_CONFIDENTIAL"
)
