package models

// DefaultProcessedName is used when the service omits processed_name.
const DefaultProcessedName = "processed_file"

// ProcessedFile describes one output file produced by the remote service.
// DownloadURL is relative to the service base URL.
type ProcessedFile struct {
	DownloadURL   string `json:"download_url"`
	ProcessedName string `json:"processed_name,omitempty"`
	OriginalName  string `json:"original_name,omitempty"`
}

// SuggestedName returns the file name to save the download under.
func (p ProcessedFile) SuggestedName() string {
	if p.ProcessedName == "" {
		return DefaultProcessedName
	}
	return p.ProcessedName
}

// BatchResult is the body of a successful batch response.
type BatchResult struct {
	Message string          `json:"message,omitempty"`
	Files   []ProcessedFile `json:"files,omitempty"`
}

// ErrorBody is the body of a failed batch response.
type ErrorBody struct {
	Message string `json:"message,omitempty"`
}
