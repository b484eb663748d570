package common

// MultipartFieldName is the shared form-field name under which every file
// of a batch is attached to the redaction request.
const MultipartFieldName = "files"

// RedactedPrefix is prepended to artifact names saved through the
// download fallback, mirroring what the service itself does when it
// names output files.
const RedactedPrefix = "redacted_"
