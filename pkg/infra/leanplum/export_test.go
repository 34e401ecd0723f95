package leanplum

// Export unexported functions for testing
var (
	ParseExportFileNameForTest = parseExportFileName
	IsAuthErrorMessageForTest  = isAuthErrorMessage
)
