package app

// UnformattedFilesError is the strict-check terminal condition: at least one
// file needs attention. The detailed per-file report has already been emitted
// by the time this is returned.
type UnformattedFilesError struct{}

func (e *UnformattedFilesError) Error() string {
	return "found files that are not formatted correctly; run 'canonfmt format' to fix them"
}
