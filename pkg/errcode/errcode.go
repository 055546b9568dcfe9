package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigMissingEmailError
	ConfigTableNamesError
	ConfigRunDateError

	// Database errors
	DBReadCredentialsError
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaTableExistsError
	SchemaCreateError
	SchemaClearError

	// ID source errors
	SourceOpenError
	SourceQueryError
	SourceScanError

	// Entrez errors
	EntrezRequestError
	EntrezHTTPStatusError
	EntrezServiceError
	EntrezMissingHistoryError
	EntrezParseError

	// MeSH extraction errors
	MeshPMIDError
	MeshParseError

	// Load errors
	LoadBeginError
	LoadBatchError
	LoadCommitError

	// Harvest errors
	HarvestCancelledError
)
